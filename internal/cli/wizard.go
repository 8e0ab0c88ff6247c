package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/takaaki-mizuno/local-book-translator/internal/app"
	"github.com/takaaki-mizuno/local-book-translator/internal/config"
	"github.com/takaaki-mizuno/local-book-translator/internal/extract"
	"github.com/takaaki-mizuno/local-book-translator/internal/translate"
)

// RunConfigWizard interactively writes a starter config file.
func RunConfigWizard() error {
	reader := bufio.NewReader(os.Stdin)
	fmt.Println("Config wizard (press Enter to accept defaults)")

	path := promptString(reader, "Config file path", "config.json")
	model := promptString(reader, "Translation model", translate.DefaultModel)
	baseURL := promptString(reader, "Model server base URL (optional)", "")
	timeout := promptInt(reader, "Timeout seconds per chunk", int(app.DefaultTimeout/time.Second))
	chunkSize := promptInt(reader, "Max chunk size (characters)", app.DefaultMaxChunkSize)
	contentClass := promptString(reader, "Readable content CSS class", extract.DefaultContentClass)

	cfg := config.Config{
		Model:          strings.TrimSpace(model),
		BaseURL:        strings.TrimSpace(baseURL),
		TimeoutSeconds: timeout,
		MaxChunkSize:   chunkSize,
		ContentClass:   strings.TrimSpace(contentClass),
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}

func promptString(reader *bufio.Reader, label, def string) string {
	if def != "" {
		fmt.Printf("%s [%s]: ", label, def)
	} else {
		fmt.Printf("%s: ", label)
	}
	line, err := reader.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	return line
}

func promptInt(reader *bufio.Reader, label string, def int) int {
	fmt.Printf("%s [%d]: ", label, def)
	line, err := reader.ReadString('\n')
	if err != nil {
		return def
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return def
	}
	var val int
	if _, err := fmt.Sscanf(line, "%d", &val); err != nil {
		return def
	}
	return val
}
