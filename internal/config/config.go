package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/idilsaglam/bookdemo/internal/demo"
)

// Config holds everything the three demos can tune.
type Config struct {
	DataFile string  `mapstructure:"data_file"`
	Theme    string  `mapstructure:"theme"`
	NoColor  bool    `mapstructure:"no_color"`
	Pace     float64 `mapstructure:"pace"` // multiplier on every scripted delay
	LogLevel string  `mapstructure:"log_level"`
	LogoURL  string  `mapstructure:"logo_url"`

	Chat    ChatConfig    `mapstructure:"chat"`
	Browser BrowserConfig `mapstructure:"browser"`
}

type ChatConfig struct {
	MaxVisible int           `mapstructure:"max_visible"`
	LoopPause  time.Duration `mapstructure:"loop_pause"`
	FetchLogo  bool          `mapstructure:"fetch_logo"`
}

type BrowserConfig struct {
	URL          string        `mapstructure:"url"`
	WebDriverURL string        `mapstructure:"webdriver_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	Headless     bool          `mapstructure:"headless"`
	Selectors    Selectors     `mapstructure:"selectors"`
}

// Selectors are the hooks the widget page is expected to expose.
type Selectors struct {
	Modal        string `mapstructure:"modal"`
	Calendar     string `mapstructure:"calendar"`
	SelectedDay  string `mapstructure:"selected_day"`
	TimeSlot     string `mapstructure:"time_slot"`
	NextButton   string `mapstructure:"next_button"`
	ConfirmBtn   string `mapstructure:"confirm_button"`
	NamePH       string `mapstructure:"name_placeholder"`
	CompanyPH    string `mapstructure:"company_placeholder"`
	EmailPH      string `mapstructure:"email_placeholder"`
	PhonePH      string `mapstructure:"phone_placeholder"`
	MessageField string `mapstructure:"message_field"`
}

const envPrefix = "BOOKDEMO"

func setDefaults(v *viper.Viper) {
	v.SetDefault("data_file", "")
	v.SetDefault("theme", "classic")
	v.SetDefault("no_color", false)
	v.SetDefault("pace", 1.0)
	v.SetDefault("log_level", "warn")
	v.SetDefault("logo_url", demo.LogoURL)

	v.SetDefault("chat.max_visible", 4)
	v.SetDefault("chat.loop_pause", "3s")
	v.SetDefault("chat.fetch_logo", true)

	v.SetDefault("browser.url", "http://127.0.0.1:3000")
	v.SetDefault("browser.webdriver_url", "http://localhost:9515")
	v.SetDefault("browser.timeout", "10s")
	v.SetDefault("browser.headless", false)
	v.SetDefault("browser.selectors.modal", ".booking-modal")
	v.SetDefault("browser.selectors.calendar", "#calendar")
	v.SetDefault("browser.selectors.selected_day", ".day.selected")
	v.SetDefault("browser.selectors.time_slot", ".time-slot")
	v.SetDefault("browser.selectors.next_button", ".next-button")
	v.SetDefault("browser.selectors.confirm_button", ".confirm-button")
	v.SetDefault("browser.selectors.name_placeholder", "Ditt namn")
	v.SetDefault("browser.selectors.company_placeholder", "Företagsnamn")
	v.SetDefault("browser.selectors.email_placeholder", "din@epost.se")
	v.SetDefault("browser.selectors.phone_placeholder", "+46")
	v.SetDefault("browser.selectors.message_field", "textarea")
}

// Load reads defaults, then an optional config file, then .env and
// BOOKDEMO_* environment variables (BOOKDEMO_CHAT_LOOP_PAUSE=3s and so on).
func Load(path string) (*Config, error) {
	_ = godotenv.Load() // .env is optional

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in values without looking at files or the environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func (c *Config) Validate() error {
	if c.Pace < 0 {
		return errors.New("pace must be >= 0")
	}
	if c.Chat.MaxVisible < 1 {
		return errors.New("chat.max_visible must be >= 1")
	}
	if c.Browser.Timeout <= 0 {
		return errors.New("browser.timeout must be positive")
	}
	return nil
}

// Scale applies a pace multiplier to a scripted delay. Every demo paces its
// waits through here.
func Scale(d time.Duration, pace float64) time.Duration {
	return time.Duration(float64(d) * pace)
}
