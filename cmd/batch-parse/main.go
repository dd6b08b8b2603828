package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"
	"strings"

	"github.com/quantaserve/qparse/pkg/qparse"
	"github.com/quantaserve/qparse/pkg/qparse/vocab"
)

func main() {
	var (
		inputPath  = flag.String("input", "", "Input JSONL file of request objects (required)")
		outputPath = flag.String("output", "", "Output JSONL file (default stdout)")
		vocabPath  = flag.String("vocab", "", "Vocabulary YAML overrides (optional)")
	)
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("--input required")
	}

	// Load vocabulary
	v := vocab.Default()
	if *vocabPath != "" {
		var err error
		v, err = vocab.LoadFile(*vocabPath)
		if err != nil {
			log.Fatal("Failed to load vocabulary:", err)
		}
	}
	engine := qparse.New(v)

	in, err := os.Open(*inputPath)
	if err != nil {
		log.Fatal("Failed to open input:", err)
	}
	defer in.Close()

	var out io.Writer = os.Stdout
	var flush func() error
	if *outputPath != "" {
		f, err := os.Create(*outputPath)
		if err != nil {
			log.Fatal("Failed to create output:", err)
		}
		defer f.Close()
		bw := bufio.NewWriter(f)
		out = bw
		flush = bw.Flush
	}

	log.Printf("Parsing requests from %s", *inputPath)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	enc := json.NewEncoder(out)

	processed, skipped, lineNo := 0, 0, 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var req qparse.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			log.Printf("Warning: skipping malformed JSON at line %d in %s: %v", lineNo, *inputPath, err)
			skipped++
			continue
		}

		if err := enc.Encode(engine.Parse(req)); err != nil {
			log.Fatal("Failed to write record:", err)
		}
		processed++

		if processed%1000 == 0 {
			log.Printf("Parsed %d requests", processed)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatal("Failed to read input:", err)
	}

	if flush != nil {
		if err := flush(); err != nil {
			log.Fatal("Failed to flush output:", err)
		}
	}

	log.Printf("✓ Batch parse complete: %d records written, %d lines skipped", processed, skipped)
}
