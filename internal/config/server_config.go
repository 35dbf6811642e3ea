package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/tesserex/custody/internal/mailer"
	"github.com/tesserex/custody/internal/mailer/transport"
	"github.com/tesserex/custody/internal/util"
)

type Database struct {
	Host             string
	Port             int
	Username         string
	Password         string `json:"-"` // sensitive
	Database         string
	AdditionalParams map[string]string `json:",omitempty"` // Optional additional connection parameters mapped into the connection string
	MaxOpenConns     int
	MaxIdleConns     int
	ConnMaxLifetime  time.Duration
}

// ConnectionString generates a connection string to be passed to sql.Open or equivalents, assuming Postgres syntax
func (c Database) ConnectionString() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s", c.Host, c.Port, c.Username, c.Password, c.Database))

	for param, value := range c.AdditionalParams {
		fmt.Fprintf(&b, " %s=%s", param, value)
	}

	return b.String()
}

type EchoServer struct {
	Debug                          bool
	ListenAddress                  string
	HideInternalServerErrorDetails bool
	BaseURL                        string
	EnableCORSMiddleware           bool
	EnableLoggerMiddleware         bool
	EnableRecoverMiddleware        bool
	EnableRequestIDMiddleware      bool
	EnableTrailingSlashMiddleware  bool
	EnableSecureMiddleware         bool
	EnableCacheControlMiddleware   bool
	SecureMiddleware               EchoServerSecureMiddleware
}

// EchoServerSecureMiddleware represents a subset of echo's secure middleware config relevant to the app stack.
// https://github.com/labstack/echo/blob/master/middleware/secure.go
type EchoServerSecureMiddleware struct {
	XSSProtection         string
	ContentTypeNosniff    string
	XFrameOptions         string
	HSTSMaxAge            int
	HSTSExcludeSubdomains bool
	ContentSecurityPolicy string
	CSPReportOnly         bool
	HSTSPreloadEnabled    bool
	ReferrerPolicy        string
}

type PprofServer struct {
	Enable                      bool
	EnableManagementKeyAuth     bool
	RuntimeBlockProfileRate     int
	RuntimeMutexProfileFraction int
}

type LoggerServer struct {
	Level              string
	RequestLevel       string
	LogRequestBody     bool
	LogRequestHeader   bool
	LogRequestQuery    bool
	LogResponseBody    bool
	LogResponseHeader  bool
	LogCaller          bool
	PrettyPrintConsole bool
}

type PathsServer struct {
	APIBaseDirAbs string
	MntBaseDirAbs string
}

type ManagementServer struct {
	Secret                  string `json:"-"` // sensitive
	ReadinessTimeout        time.Duration
	LivenessTimeout         time.Duration
	ProbeWriteablePathsAbs  []string
	ProbeWriteableTouchfile string
}

// CustodyServer groups the configuration of the on-chain custody workers.
type CustodyServer struct {
	KeystoreDirAbs              string
	KeystorePassphrase          string `json:"-"` // sensitive
	EnableDepositMonitor        bool
	EnableSweeper               bool
	EnableWithdrawProcessor     bool
	EnableHotWalletMonitor      bool
	DepositScanInterval         time.Duration
	DepositConfirmTimeout       time.Duration
	SweepPlanInterval           time.Duration
	SweepExecuteInterval        time.Duration
	WithdrawPollInterval        time.Duration
	WithdrawRetryAttempts       int
	WithdrawRetryDelay          time.Duration
	HotWalletCheckInterval      time.Duration
	BalanceRequestTimeout       time.Duration
	GatewayRequestTimeout       time.Duration
	GatewayMaxRequestsPerSec    float64
	GatewayRetryMaxAttempts     int
	GatewayRetryInitialDelay    time.Duration
	GatewayRetryMaxDelay        time.Duration
	ChainCacheExpiry            time.Duration
	AlertRecipients             []string
	SubscriptionProviderURL     string
	SubscriptionProviderTimeout time.Duration
}

type Server struct {
	Database   Database
	Echo       EchoServer
	Pprof      PprofServer
	Paths      PathsServer
	Management ManagementServer
	Mailer     mailer.MailerConfig
	SMTP       transport.SMTPMailTransportConfig
	Logger     LoggerServer
	Custody    CustodyServer
}

// DefaultServiceConfigFromEnv returns our server config as parsed from the environment.
func DefaultServiceConfigFromEnv() Server {
	return Server{
		Database: Database{
			Host:     util.GetEnv("PGHOST", "postgres"),
			Port:     util.GetEnvAsInt("PGPORT", 5432),
			Database: util.GetEnv("PGDATABASE", "development"),
			Username: util.GetEnv("PGUSER", "dbuser"),
			Password: util.GetEnv("PGPASSWORD", ""),
			AdditionalParams: map[string]string{
				"sslmode": util.GetEnv("PGSSLMODE", "disable"),
			},
			MaxOpenConns:    util.GetEnvAsInt("DB_MAX_OPEN_CONNS", 30),
			MaxIdleConns:    util.GetEnvAsInt("DB_MAX_IDLE_CONNS", 15),
			ConnMaxLifetime: time.Second * time.Duration(util.GetEnvAsInt("DB_CONN_MAX_LIFETIME_SEC", 3600)),
		},
		Echo: EchoServer{
			Debug:                          util.GetEnvAsBool("SERVER_ECHO_DEBUG", false),
			ListenAddress:                  util.GetEnv("SERVER_ECHO_LISTEN_ADDRESS", ":8080"),
			HideInternalServerErrorDetails: util.GetEnvAsBool("SERVER_ECHO_HIDE_INTERNAL_SERVER_ERROR_DETAILS", true),
			BaseURL:                        util.GetEnv("SERVER_ECHO_BASE_URL", "http://localhost:8080"),
			EnableCORSMiddleware:           util.GetEnvAsBool("SERVER_ECHO_ENABLE_CORS_MIDDLEWARE", true),
			EnableLoggerMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_LOGGER_MIDDLEWARE", true),
			EnableRecoverMiddleware:        util.GetEnvAsBool("SERVER_ECHO_ENABLE_RECOVER_MIDDLEWARE", true),
			EnableRequestIDMiddleware:      util.GetEnvAsBool("SERVER_ECHO_ENABLE_REQUEST_ID_MIDDLEWARE", true),
			EnableTrailingSlashMiddleware:  util.GetEnvAsBool("SERVER_ECHO_ENABLE_TRAILING_SLASH_MIDDLEWARE", true),
			EnableSecureMiddleware:         util.GetEnvAsBool("SERVER_ECHO_ENABLE_SECURE_MIDDLEWARE", true),
			EnableCacheControlMiddleware:   util.GetEnvAsBool("SERVER_ECHO_ENABLE_CACHE_CONTROL_MIDDLEWARE", true),

			// see https://echo.labstack.com/middleware/secure
			// see https://github.com/labstack/echo/blob/master/middleware/secure.go
			SecureMiddleware: EchoServerSecureMiddleware{
				XSSProtection:         util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_XSS_PROTECTION", "1; mode=block"),
				ContentTypeNosniff:    util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_CONTENT_TYPE_NOSNIFF", "nosniff"),
				XFrameOptions:         util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_X_FRAME_OPTIONS", "SAMEORIGIN"),
				HSTSMaxAge:            util.GetEnvAsInt("SERVER_ECHO_SECURE_MIDDLEWARE_HSTS_MAX_AGE", 0),
				HSTSExcludeSubdomains: util.GetEnvAsBool("SERVER_ECHO_SECURE_MIDDLEWARE_HSTS_EXCLUDE_SUBDOMAINS", false),
				ContentSecurityPolicy: util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_CONTENT_SECURITY_POLICY", ""),
				CSPReportOnly:         util.GetEnvAsBool("SERVER_ECHO_SECURE_MIDDLEWARE_CSP_REPORT_ONLY", false),
				HSTSPreloadEnabled:    util.GetEnvAsBool("SERVER_ECHO_SECURE_MIDDLEWARE_HSTS_PRELOAD_ENABLED", false),
				ReferrerPolicy:        util.GetEnv("SERVER_ECHO_SECURE_MIDDLEWARE_REFERRER_POLICY", "same-origin"),
			},
		},
		Pprof: PprofServer{
			// https://golang.org/pkg/net/http/pprof/
			Enable:                  util.GetEnvAsBool("SERVER_PPROF_ENABLE", false),
			EnableManagementKeyAuth: util.GetEnvAsBool("SERVER_PPROF_ENABLE_MANAGEMENT_KEY_AUTH", true),
			// https://golang.org/pkg/runtime/#SetBlockProfileRate
			RuntimeBlockProfileRate: util.GetEnvAsInt("SERVER_PPROF_RUNTIME_BLOCK_PROFILE_RATE", 0),
			// https://golang.org/pkg/runtime/#SetMutexProfileFraction
			RuntimeMutexProfileFraction: util.GetEnvAsInt("SERVER_PPROF_RUNTIME_MUTEX_PROFILE_FRACTION", 0),
		},
		Paths: PathsServer{
			// Absolute path to the directory of the currently running binary
			APIBaseDirAbs: util.GetEnv("SERVER_PATHS_API_BASE_DIR_ABS", "/app/api"),
			MntBaseDirAbs: util.GetEnv("SERVER_PATHS_MNT_BASE_DIR_ABS", "/app/assets/mnt"),
		},
		Management: ManagementServer{
			Secret:           util.GetMgmtSecret("SERVER_MANAGEMENT_SECRET"),
			ReadinessTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_READINESS_TIMEOUT_SEC", 4)),
			LivenessTimeout:  time.Second * time.Duration(util.GetEnvAsInt("SERVER_MANAGEMENT_LIVENESS_TIMEOUT_SEC", 9)),
			ProbeWriteablePathsAbs: util.GetEnvAsStringArr("SERVER_MANAGEMENT_PROBE_WRITEABLE_PATHS_ABS",
				[]string{"/app/assets/mnt"}, ","),
			ProbeWriteableTouchfile: util.GetEnv("SERVER_MANAGEMENT_PROBE_WRITEABLE_TOUCHFILE", ".healthy"),
		},
		Mailer: mailer.MailerConfig{
			DefaultSender:               util.GetEnv("SERVER_MAILER_DEFAULT_SENDER", "custody@example.com"),
			Send:                        util.GetEnvAsBool("SERVER_MAILER_SEND", true),
			WebTemplatesEmailBaseDirAbs: util.GetEnv("SERVER_MAILER_WEB_TEMPLATES_EMAIL_BASE_DIR_ABS", filepath.Join(util.GetProjectRootDir(), "/web/templates/email")),
			Transporter:                 util.GetEnvEnum("SERVER_MAILER_TRANSPORTER", mailer.MailerTransporterMock.String(), []string{mailer.MailerTransporterSMTP.String(), mailer.MailerTransporterMock.String()}),
		},
		SMTP: transport.SMTPMailTransportConfig{
			Host:      util.GetEnv("SERVER_SMTP_HOST", "mailhog"),
			Port:      util.GetEnvAsInt("SERVER_SMTP_PORT", 1025),
			Username:  util.GetEnv("SERVER_SMTP_USERNAME", ""),
			Password:  util.GetEnv("SERVER_SMTP_PASSWORD", ""),
			AuthType:  transport.SMTPAuthTypeFromString(util.GetEnv("SERVER_SMTP_AUTH_TYPE", transport.SMTPAuthTypeNone.String())),
			UseTLS:    util.GetEnvAsBool("SERVER_SMTP_USE_TLS", false),
			TLSConfig: nil,
		},
		Logger: LoggerServer{
			Level:              util.GetEnv("SERVER_LOGGER_LEVEL", "debug"),
			RequestLevel:       util.GetEnv("SERVER_LOGGER_REQUEST_LEVEL", "debug"),
			LogRequestBody:     util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_BODY", false),
			LogRequestHeader:   util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_HEADER", false),
			LogRequestQuery:    util.GetEnvAsBool("SERVER_LOGGER_LOG_REQUEST_QUERY", false),
			LogResponseBody:    util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_BODY", false),
			LogResponseHeader:  util.GetEnvAsBool("SERVER_LOGGER_LOG_RESPONSE_HEADER", false),
			LogCaller:          util.GetEnvAsBool("SERVER_LOGGER_LOG_CALLER", false),
			PrettyPrintConsole: util.GetEnvAsBool("SERVER_LOGGER_PRETTY_PRINT_CONSOLE", false),
		},
		Custody: CustodyServer{
			KeystoreDirAbs:              util.GetEnv("SERVER_CUSTODY_KEYSTORE_DIR_ABS", "/app/keystore"),
			KeystorePassphrase:          util.GetEnv("SERVER_CUSTODY_KEYSTORE_PASSPHRASE", ""),
			EnableDepositMonitor:        util.GetEnvAsBool("SERVER_CUSTODY_ENABLE_DEPOSIT_MONITOR", true),
			EnableSweeper:               util.GetEnvAsBool("SERVER_CUSTODY_ENABLE_SWEEPER", true),
			EnableWithdrawProcessor:     util.GetEnvAsBool("SERVER_CUSTODY_ENABLE_WITHDRAW_PROCESSOR", true),
			EnableHotWalletMonitor:      util.GetEnvAsBool("SERVER_CUSTODY_ENABLE_HOT_WALLET_MONITOR", true),
			DepositScanInterval:         time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_DEPOSIT_SCAN_INTERVAL_SEC", 15)),
			DepositConfirmTimeout:       time.Minute * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_DEPOSIT_CONFIRM_TIMEOUT_MIN", 120)),
			SweepPlanInterval:           time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_SWEEP_PLAN_INTERVAL_SEC", 30)),
			SweepExecuteInterval:        time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_SWEEP_EXECUTE_INTERVAL_SEC", 15)),
			WithdrawPollInterval:        time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_WITHDRAW_POLL_INTERVAL_SEC", 10)),
			WithdrawRetryAttempts:       util.GetEnvAsInt("SERVER_CUSTODY_WITHDRAW_RETRY_ATTEMPTS", 3),
			WithdrawRetryDelay:          time.Millisecond * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_WITHDRAW_RETRY_DELAY_MS", 2000)),
			HotWalletCheckInterval:      time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_HOT_WALLET_CHECK_INTERVAL_SEC", 60)),
			BalanceRequestTimeout:       time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_BALANCE_REQUEST_TIMEOUT_SEC", 10)),
			GatewayRequestTimeout:       time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_GATEWAY_REQUEST_TIMEOUT_SEC", 15)),
			GatewayMaxRequestsPerSec:    util.GetEnvAsFloat64("SERVER_CUSTODY_GATEWAY_MAX_REQUESTS_PER_SEC", 10),
			GatewayRetryMaxAttempts:     util.GetEnvAsInt("SERVER_CUSTODY_GATEWAY_RETRY_MAX_ATTEMPTS", 5),
			GatewayRetryInitialDelay:    time.Millisecond * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_GATEWAY_RETRY_INITIAL_DELAY_MS", 500)),
			GatewayRetryMaxDelay:        time.Millisecond * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_GATEWAY_RETRY_MAX_DELAY_MS", 30000)),
			ChainCacheExpiry:            time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_CHAIN_CACHE_EXPIRY_SEC", 300)),
			AlertRecipients:             util.GetEnvAsStringArr("SERVER_CUSTODY_ALERT_RECIPIENTS", []string{}, ","),
			SubscriptionProviderURL:     util.GetEnv("SERVER_CUSTODY_SUBSCRIPTION_PROVIDER_URL", ""),
			SubscriptionProviderTimeout: time.Second * time.Duration(util.GetEnvAsInt("SERVER_CUSTODY_SUBSCRIPTION_PROVIDER_TIMEOUT_SEC", 10)),
		},
	}
}
