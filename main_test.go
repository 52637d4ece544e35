package main

import (
	"bytes"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteIcons(t *testing.T) {
	dir := t.TempDir()
	if err := writeIcons(dir); err != nil {
		t.Fatalf("writeIcons: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != len(sizes) {
		t.Errorf("wrote %d files, want %d", len(entries), len(sizes))
	}

	for _, size := range sizes {
		name := fmt.Sprintf("icon%d.png", size)
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s: not a valid PNG: %v", name, err)
			continue
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("%s: %dx%d, want %dx%d", name, cfg.Width, cfg.Height, size, size)
		}
	}
}

func TestWriteIconsOverwritesIdentically(t *testing.T) {
	dir := t.TempDir()
	if err := writeIcons(dir); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := map[string][]byte{}
	for _, size := range sizes {
		name := fmt.Sprintf("icon%d.png", size)
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		first[name] = data
	}

	if err := writeIcons(dir); err != nil {
		t.Fatalf("second run: %v", err)
	}
	for name, want := range first {
		got, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !bytes.Equal(got, want) {
			t.Errorf("%s changed between runs, want byte-identical output", name)
		}
	}
}

func TestWriteIconsMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "does", "not", "exist")
	if err := writeIcons(dir); err == nil {
		t.Error("writeIcons into a missing directory succeeded, want error")
	}
}

func TestWriteICO(t *testing.T) {
	dir := t.TempDir()
	if err := writeICO(dir); err != nil {
		t.Fatalf("writeICO: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "icon.ico"))
	if err != nil {
		t.Fatalf("read icon.ico: %v", err)
	}
	if len(data) < 6 {
		t.Fatalf("icon.ico is %d bytes, expected at least an ICONDIR header", len(data))
	}
	if data[2] != 1 || data[3] != 0 {
		t.Errorf("image type = %x %x, want 1 0 (ICO)", data[2], data[3])
	}
}
