package config

import (
	"os"
	"reflect"
	"testing"
)

func TestNewConfig(t *testing.T) {
	tests := []struct {
		name    string
		envVars map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "Valid configuration",
			envVars: map[string]string{
				"PORT":            "8080",
				"SECRET":          "mysecret",
				"APP_ENV":         "development",
				"BASE_URL":        "http://localhost",
				"UPLOAD_DIR":      "./uploads",
				"UPLOAD_MAX_SIZE": "10MB",
			},
			want: &Config{
				Port:          8080,
				Secret:        "mysecret",
				Env:           "development",
				BaseURL:       "http://localhost",
				UploadMaxSize: 10 * 1024 * 1024,
				Storage: StorageConfig{
					Provider:  "local",
					LocalPath: "./uploads",
				},
			},
			wantErr: false,
		},
		{
			name: "Missing PORT",
			envVars: map[string]string{
				"SECRET":     "mysecret",
				"APP_ENV":    "development",
				"UPLOAD_DIR": "./uploads",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "Missing SECRET",
			envVars: map[string]string{
				"PORT":       "8080",
				"APP_ENV":    "development",
				"UPLOAD_DIR": "./uploads",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "Invalid UPLOAD_MAX_SIZE",
			envVars: map[string]string{
				"PORT":            "8080",
				"SECRET":          "mysecret",
				"UPLOAD_DIR":      "./uploads",
				"UPLOAD_MAX_SIZE": "invalid",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "Local storage without UPLOAD_DIR",
			envVars: map[string]string{
				"PORT":             "8080",
				"SECRET":           "mysecret",
				"STORAGE_PROVIDER": "local",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "GCS storage without project",
			envVars: map[string]string{
				"PORT":             "8080",
				"SECRET":           "mysecret",
				"STORAGE_PROVIDER": "gcs",
				"GCS_BUCKET_NAME":  "bucket",
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "Negative PORT",
			envVars: map[string]string{
				"PORT":       "-8080",
				"SECRET":     "mysecret",
				"UPLOAD_DIR": "./uploads",
			},
			want:    nil,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.envVars {
				if err := os.Setenv(k, v); err != nil {
					return
				}
			}
			got, err := NewConfig()
			if (err != nil) != tt.wantErr {
				t.Errorf("NewConfig() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewConfig() got = %v, want %v", got, tt.want)
			}
			for k := range tt.envVars {
				if err := os.Unsetenv(k); err != nil {
					return
				}
			}
		})
	}
}

func Test_parseUploadMaxSize(t *testing.T) {
	tests := []struct {
		name    string
		size    string
		want    int64
		wantErr bool
	}{
		{
			name:    "Valid MB size",
			size:    "25MB",
			want:    25 * 1024 * 1024,
			wantErr: false,
		},
		{
			name:    "Valid GB size",
			size:    "1GB",
			want:    1 * 1024 * 1024 * 1024,
			wantErr: false,
		},
		{
			name:    "Invalid size",
			size:    "invalid",
			want:    0,
			wantErr: true,
		},
		{
			name:    "No suffix size",
			size:    "25",
			want:    25 * 1024 * 1024,
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUploadMaxSize(tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("parseUploadMaxSize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("parseUploadMaxSize() got = %v, want %v", got, tt.want)
			}
		})
	}
}
