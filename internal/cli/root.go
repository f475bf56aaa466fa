// Package cli собирает cobra-команды клиента ingestion API.
package cli

import (
	"io"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/yourname/ingest_lite/internal/app/terminalui"
	"github.com/yourname/ingest_lite/internal/config"
	"github.com/yourname/ingest_lite/internal/usecase/uploadflow"
	"github.com/yourname/ingest_lite/pkg/ingestclient"
)

// state — то, что разделяют подкоманды после PersistentPreRunE.
type state struct {
	configPath string
	baseURL    string
	noColor    bool
	verbose    bool

	cfg *config.Config
}

func NewRootCmd() *cobra.Command {
	st := &state{}

	cmd := &cobra.Command{
		Use:   "ingest",
		Short: "Upload named materials to an ingestion backend",
		Long: `Ingest uploads a file under a content name using the two-step ingestion handshake:
it opens an ingestion session, then posts the title and the file into that session.

Settings come from config.yaml (or CONFIG_PATH), a .env file and environment variables.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
			return st.load(cmd.ErrOrStderr())
		},
	}

	cmd.PersistentFlags().StringVar(&st.configPath, "config", "", "Path to YAML config (overrides CONFIG_PATH)")
	cmd.PersistentFlags().StringVar(&st.baseURL, "base-url", "", "API base URL (overrides api_base_url)")
	cmd.PersistentFlags().BoolVar(&st.noColor, "no-color", false, "Disable colored feedback")
	cmd.PersistentFlags().BoolVarP(&st.verbose, "verbose", "v", false, "Verbose logging")

	cmd.AddCommand(newUploadCmd(st))
	cmd.AddCommand(newInteractiveCmd(st))
	cmd.AddCommand(newMaterialsCmd(st))

	return cmd
}

func (st *state) load(logOut io.Writer) error {
	var (
		cfg *config.Config
		err error
	)
	if st.configPath != "" {
		cfg, err = config.LoadFile(st.configPath, true)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}
	if st.baseURL != "" {
		cfg.APIBaseURL = st.baseURL
	}
	st.cfg = cfg

	level := slog.LevelWarn
	if st.verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: level})))

	return nil
}

func (st *state) client() ingestclient.Client {
	return ingestclient.New(st.cfg.IngestURL(), ingestclient.WithTimeout(st.cfg.RequestTimeout))
}

// form — UI-хэндлы одной формы и поток, привязанный к ним.
type form struct {
	title  *terminalui.TextField
	file   *terminalui.FileField
	banner *terminalui.Banner
	flow   *uploadflow.Flow
}

func (st *state) newForm(out io.Writer) *form {
	f := &form{
		title:  &terminalui.TextField{},
		file:   &terminalui.FileField{},
		banner: terminalui.NewBanner(out, !st.noColor),
	}
	f.flow = uploadflow.New(uploadflow.Deps{
		Client: st.client(),
		Title:  f.title,
		File:   f.file,
		Status: f.banner,
		Logger: slog.Default(),
	})

	return f
}
