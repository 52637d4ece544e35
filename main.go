// Generates the Page Monitor application icons: icon16.png,
// icon32.png, icon48.png and icon128.png, written next to the
// executable (or into -out), plus an optional multi-size icon.ico.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"

	"github.com/kchwistek/pagemonitor-icons/icon"
)

var sizes = []int{16, 32, 48, 128}

func main() {
	log.SetFlags(0)

	outDir := flag.String("out", "", "output directory (default: the executable's directory)")
	withICO := flag.Bool("ico", false, "also write a multi-size icon.ico")
	flag.Parse()

	dir := *outDir
	if dir == "" {
		exe, err := os.Executable()
		if err != nil {
			log.Fatalf("locate executable: %v", err)
		}
		dir = filepath.Dir(exe)
	}

	log.Printf("generating icons...")
	if err := writeIcons(dir); err != nil {
		log.Fatalf("%v", err)
	}
	if *withICO {
		if err := writeICO(dir); err != nil {
			log.Fatalf("%v", err)
		}
	}
	log.Printf("all icons generated successfully!")
	log.Printf("output directory: %s", dir)
}

// writeIcons renders and writes icon{size}.png for each size, in
// order. A failure partway through leaves the earlier files in place.
func writeIcons(dir string) error {
	for _, size := range sizes {
		name := fmt.Sprintf("icon%d.png", size)
		if err := writePNG(filepath.Join(dir, name), size); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		log.Printf("created %s (%dx%d)", name, size, size)
	}
	return nil
}

func writePNG(path string, size int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, icon.Render(size)); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func writeICO(dir string) error {
	f, err := os.Create(filepath.Join(dir, "icon.ico"))
	if err != nil {
		return fmt.Errorf("icon.ico: %w", err)
	}
	if err := icon.EncodeICO(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("icon.ico: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("icon.ico: %w", err)
	}
	log.Printf("created icon.ico")
	return nil
}
