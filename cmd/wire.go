package cmd

import (
	"fmt"
	"io"
	"net/http"

	authadapter "github.com/bnema/bizassist-cli/internal/adapters/auth"
	chainstore "github.com/bnema/bizassist-cli/internal/adapters/credentials/chain"
	filestore "github.com/bnema/bizassist-cli/internal/adapters/credentials/file"
	"github.com/bnema/bizassist-cli/internal/adapters/platform"
	renderadapter "github.com/bnema/bizassist-cli/internal/adapters/render/assistant"
	tomlrepo "github.com/bnema/bizassist-cli/internal/adapters/repo/toml"
	"github.com/bnema/bizassist-cli/internal/application"
	"github.com/bnema/bizassist-cli/internal/config"
	"github.com/bnema/bizassist-cli/internal/domain"
	"github.com/bnema/bizassist-cli/internal/platform/logger"
	"github.com/bnema/bizassist-cli/internal/ports"
	"github.com/bnema/bizassist-cli/internal/version"
	"github.com/spf13/viper"
)

type app struct {
	cfg             config.Config
	log             *logger.Logger
	session         *application.AuthSession
	client          *platform.Client
	aggregator      *application.Aggregator
	passwordFlow    authadapter.PasswordFlowAdapter
	clock           ports.Clock
	contextRenderer func(domain.AggregateContext) (string, error)
	modulesRenderer func([]application.ModuleProbe) (string, error)
}

func (a *app) wire(logOutput io.Writer, verbose bool) error {
	cfg, err := config.Load(viper.New())
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logMode := cfg.LogMode
	if verbose {
		logMode = "dev"
	}
	log := logger.New(logMode, logOutput)

	profiles, err := tomlrepo.NewRepository(cfg.ProfilePath())
	if err != nil {
		return fmt.Errorf("wire profile repository: %w", err)
	}

	credentials, err := credentialStore(cfg)
	if err != nil {
		return err
	}

	clock := ports.SystemClock{}
	session := application.NewAuthSession(credentials, profiles, clock, log)
	httpClient := &http.Client{}

	client := &platform.Client{
		BaseURL:        cfg.APIBaseURL,
		HTTPClient:     httpClient,
		RequestTimeout: cfg.APITimeout,
		Credentials:    session,
		Log:            log,
		UserAgent:      "ba/" + version.Version,
	}

	*a = app{
		cfg:        cfg,
		log:        log,
		session:    session,
		client:     client,
		aggregator: application.NewAggregator(client, client, log),
		passwordFlow: authadapter.PasswordFlowAdapter{
			API:            authadapter.DefaultAPI(cfg.APIBaseURL),
			HTTPClient:     httpClient,
			RequestTimeout: cfg.APITimeout,
		},
		clock:           clock,
		contextRenderer: renderadapter.RenderContext,
		modulesRenderer: renderadapter.RenderModules,
	}

	log.Debug("wired", "api_base_url", cfg.APIBaseURL, "home", cfg.Home)
	return nil
}

func credentialStore(cfg config.Config) (ports.CredentialStore, error) {
	if cfg.CredentialBackend == config.BackendFile {
		return filestore.NewStore(cfg.CredentialsDir()), nil
	}

	store, err := chainstore.NewPassFirstWithFileFallback(cfg.PassEntry, cfg.CredentialsDir())
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}
	return store, nil
}

func (a *app) close() {
	a.log.OrNop().Sync()
}

func (a *app) newChatSession() *application.ChatSession {
	return application.NewChatSession(a.aggregator, a.client, a.clock, a.log)
}
