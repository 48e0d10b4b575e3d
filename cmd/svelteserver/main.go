package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/orta/language-tools/internal/lsp"
	"github.com/orta/language-tools/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "svelteserver",
	Short: "Language server for Svelte component files",
	Long:  `svelteserver provides editor tooling for component files with embedded scripts`,
}

var lspCmd = &cobra.Command{
	Use:          "lsp",
	Short:        "Run the language server over stdio",
	SilenceUsage: true,
	RunE:         runLSP,
}

func main() {
	rootCmd.Version = version.Version
	rootCmd.AddCommand(lspCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runLSP(cmd *cobra.Command, _ []string) error {
	// Set up logging
	commonlog.Configure(1, nil)

	// Stdout carries the protocol stream; logs go to stderr and a file.
	logsDir := filepath.Join(os.TempDir(), "svelteserver")
	if err := os.MkdirAll(logsDir, 0755); err != nil {
		return err
	}

	logFile, err := os.OpenFile(
		filepath.Join(logsDir, "svelteserver.log"),
		os.O_CREATE|os.O_WRONLY|os.O_APPEND,
		0666,
	)
	if err != nil {
		return err
	}
	defer logFile.Close()

	multiWriter := io.MultiWriter(os.Stderr, logFile)
	log.SetOutput(multiWriter)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)
	log.Println("Starting svelteserver...")

	server, err := lsp.NewServer()
	if err != nil {
		return err
	}
	return server.RunStdio()
}
