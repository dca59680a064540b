package config

import (
	"fmt"
	"path/filepath"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Input    InputConfig    `mapstructure:"input"`
	Columns  ColumnsConfig  `mapstructure:"columns"`
	Outputs  OutputsConfig  `mapstructure:"outputs"`
	Latex    LatexConfig    `mapstructure:"latex"`
	Audio    AudioConfig    `mapstructure:"audio"`
	Database DatabaseConfig `mapstructure:"database"`
	Portal   PortalConfig   `mapstructure:"portal"`
}

// InputConfig locates the dictionary spreadsheet. FirstLine is the line
// number reported for the first data row.
type InputConfig struct {
	Path      string `mapstructure:"path"`
	FirstLine int    `mapstructure:"first_line" validate:"min=1"`
}

// ColumnsConfig names the spreadsheet column of every field.
type ColumnsConfig struct {
	Nuu                 string `mapstructure:"nuu" validate:"required"`
	IPA                 string `mapstructure:"ipa"`
	Nama                string `mapstructure:"nama"`
	Afrikaans           string `mapstructure:"afrikaans"`
	AfrikaansLocal      string `mapstructure:"afrikaans_local"`
	English             string `mapstructure:"english"`
	POS                 string `mapstructure:"pos"`
	NamaAnnotation      string `mapstructure:"nama_annotation"`
	AfrikaansAnnotation string `mapstructure:"afrikaans_annotation"`
	EnglishAnnotation   string `mapstructure:"english_annotation"`
	Audio               string `mapstructure:"audio"`
}

type OutputsConfig struct {
	Portal      string `mapstructure:"portal"`
	Latex       string `mapstructure:"latex"`
	AudioScript string `mapstructure:"audio_script"`
	Report      string `mapstructure:"report"`
}

type LatexConfig struct {
	HeaderLength     int      `mapstructure:"header_length" validate:"min=1"`
	PreambleTemplate string   `mapstructure:"preamble_template" validate:"omitempty,file"`
	FontSize         string   `mapstructure:"font_size"`
	Paper            string   `mapstructure:"paper"`
	Sections         []string `mapstructure:"sections" validate:"dive,language"`
}

type AudioConfig struct {
	BaseDirectory   string `mapstructure:"base_directory"`
	TargetDirectory string `mapstructure:"target_directory"`
}

type DatabaseConfig struct {
	Host            string            `mapstructure:"host"`
	Port            int               `mapstructure:"port"`
	Database        string            `mapstructure:"database"`
	Username        string            `mapstructure:"username"`
	Password        string            `mapstructure:"password"`
	TLS             bool              `mapstructure:"tls"`
	Params          map[string]string `mapstructure:"params"`
	MaxOpenConns    int               `mapstructure:"max_open_conns"`
	MaxIdleConns    int               `mapstructure:"max_idle_conns"`
	ConnMaxLifetime int               `mapstructure:"conn_max_lifetime_seconds"`
	RetryAttempts   uint              `mapstructure:"retry_attempts"`
}

type PortalConfig struct {
	BaseURL       string `mapstructure:"base_url" validate:"omitempty,url"`
	Project       string `mapstructure:"project"`
	Token         string `mapstructure:"token"`
	RetryAttempts uint   `mapstructure:"retry_attempts"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/nuuconv")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("input.path", "dictionary.csv")
	v.SetDefault("input.first_line", 2)

	v.SetDefault("columns.nuu", "Orthography 1")
	v.SetDefault("columns.ipa", "IPA")
	v.SetDefault("columns.nama", "Nama Feedback")
	v.SetDefault("columns.afrikaans", "Afrikaans community feedback HEADWORD")
	v.SetDefault("columns.afrikaans_local", "Afrikaans community feedback Local Variety ")
	v.SetDefault("columns.english", "English")
	v.SetDefault("columns.pos", "Part of Speech, English")
	v.SetDefault("columns.nama_annotation", "Nama Parentheticals")
	v.SetDefault("columns.afrikaans_annotation", "Afrik Parentheticals")
	v.SetDefault("columns.english_annotation", "Parentheticals, English")
	v.SetDefault("columns.audio", "Dictionary Recording (target word only)")

	v.SetDefault("outputs.portal", filepath.Join("outputs", "portal.txt"))
	v.SetDefault("outputs.latex", filepath.Join("outputs", "dictionary.tex"))
	v.SetDefault("outputs.audio_script", filepath.Join("outputs", "copy_audio.sh"))
	v.SetDefault("outputs.report", filepath.Join("outputs", "issues.md"))

	v.SetDefault("latex.header_length", 25)
	// Template is optional - if not specified, will use embedded fallback template
	v.SetDefault("latex.preamble_template", "")
	v.SetDefault("latex.font_size", "10pt")
	v.SetDefault("latex.paper", "a4paper")
	v.SetDefault("latex.sections", []string{"nuu", "nama", "afrikaans", "english"})

	v.SetDefault("audio.base_directory", "recordings")
	v.SetDefault("audio.target_directory", filepath.Join("app", "assets", "audio"))

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.database", "nuu")
	v.SetDefault("database.username", "user")
	v.SetDefault("database.retry_attempts", 3)

	v.SetDefault("portal.base_url", "")
	v.SetDefault("portal.project", "")
	v.SetDefault("portal.retry_attempts", 3)

	// Bind database password to environment variable
	if err := v.BindEnv("database.password", "DB_PASSWORD"); err != nil {
		return nil, fmt.Errorf("failed to bind DB_PASSWORD environment variable: %w", err)
	}
	// Bind portal token to environment variable only (not from config file)
	if err := v.BindEnv("portal.token", "PORTAL_TOKEN"); err != nil {
		return nil, fmt.Errorf("failed to bind PORTAL_TOKEN environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		var errorMsgs []string
		for _, e := range validationErrors {
			errorMsgs = append(errorMsgs, e.Translate(loader.translator))
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}
