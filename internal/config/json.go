package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations, so the same schema can be expressed in a
// config file as in the environment.
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress          string   `json:"http_address"`
		HealthPath           string   `json:"health_path"`
		ReadHeaderTimeout    Duration `json:"read_header_timeout"`
		KeepAliveTimeout     Duration `json:"keep_alive_timeout"`
		DrainTimeout         Duration `json:"drain_timeout"`
		DisableHTTPSRedirect bool     `json:"disable_https_redirect"`
	} `json:"server,omitempty"`

	Log struct {
		Level    string `json:"level"`
		Requests bool   `json:"requests"`
	} `json:"log,omitempty"`

	Auth struct {
		TokenSignKey  string   `json:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer"`
		TokenDuration Duration `json:"token_duration"`
		APIKeyHash    string   `json:"api_key_hash"`
	} `json:"auth,omitempty"`

	Static struct {
		Dir    string `json:"dir"`
		Prefix string `json:"prefix"`
	} `json:"static,omitempty"`

	Metrics struct {
		Enabled bool   `json:"enabled"`
		Path    string `json:"path"`
	} `json:"metrics,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Server: Server{
			HTTPAddress:          jsonCfg.Server.HTTPAddress,
			HealthPath:           jsonCfg.Server.HealthPath,
			ReadHeaderTimeout:    time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			KeepAliveTimeout:     time.Duration(jsonCfg.Server.KeepAliveTimeout),
			DrainTimeout:         time.Duration(jsonCfg.Server.DrainTimeout),
			DisableHTTPSRedirect: jsonCfg.Server.DisableHTTPSRedirect,
		},
		Log: Log{
			Level:    jsonCfg.Log.Level,
			Requests: jsonCfg.Log.Requests,
		},
		Auth: Auth{
			TokenSignKey:  jsonCfg.Auth.TokenSignKey,
			TokenIssuer:   jsonCfg.Auth.TokenIssuer,
			TokenDuration: time.Duration(jsonCfg.Auth.TokenDuration),
			APIKeyHash:    jsonCfg.Auth.APIKeyHash,
		},
		Static: Static{
			Dir:    jsonCfg.Static.Dir,
			Prefix: jsonCfg.Static.Prefix,
		},
		Metrics: Metrics{
			Enabled: jsonCfg.Metrics.Enabled,
			Path:    jsonCfg.Metrics.Path,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
