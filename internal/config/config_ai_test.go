package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func baseAIConfig() *Config {
	return &Config{
		AI: AIConfig{
			Provider:         "gemini",
			Model:            "gemini-2.0-flash",
			Timeout:          60 * time.Second,
			APIKey:           "global-key",
			MaxRetries:       3,
			Temperature:      0.7,
			UseSystemPrompts: true,
		},
	}
}

func TestGetExtractConfigFallsBackToGlobal(t *testing.T) {
	config := baseAIConfig()

	extract := config.GetExtractConfig()

	assert.Equal(t, "gemini", extract.Provider)
	assert.Equal(t, "gemini-2.0-flash", extract.Model)
	assert.Equal(t, "global-key", extract.APIKey)
	if assert.NotNil(t, extract.Timeout) {
		assert.Equal(t, 60*time.Second, *extract.Timeout)
	}
	if assert.NotNil(t, extract.MaxRetries) {
		assert.Equal(t, 3, *extract.MaxRetries)
	}
	if assert.NotNil(t, extract.Temperature) {
		assert.Equal(t, float32(0.7), *extract.Temperature)
	}
	if assert.NotNil(t, extract.UseSystemPrompts) {
		assert.True(t, *extract.UseSystemPrompts)
	}
}

func TestGetExtractConfigKeepsOperationOverrides(t *testing.T) {
	config := baseAIConfig()
	timeout := 120 * time.Second
	temperature := float32(0.1)
	maxRetries := 2
	useSystemPrompts := false
	config.AI.Extract = OperationAIConfig{
		Model:            "gemini-2.5-pro",
		Timeout:          &timeout,
		APIKey:           "extract-key",
		MaxRetries:       &maxRetries,
		Temperature:      &temperature,
		UseSystemPrompts: &useSystemPrompts,
	}

	extract := config.GetExtractConfig()

	assert.Equal(t, "gemini", extract.Provider) // inherited
	assert.Equal(t, "gemini-2.5-pro", extract.Model)
	assert.Equal(t, "extract-key", extract.APIKey)
	assert.Equal(t, 120*time.Second, *extract.Timeout)
	assert.Equal(t, 2, *extract.MaxRetries)
	assert.Equal(t, float32(0.1), *extract.Temperature)
	assert.False(t, *extract.UseSystemPrompts)
}

func TestGetOptimizeConfigPromptFallbacks(t *testing.T) {
	config := baseAIConfig()
	config.AI.CustomPrompts.SystemPrompts.Optimize = "global system optimize"
	config.AI.CustomPrompts.UserPrompts.Optimize = "global user optimize"

	optimize := config.GetOptimizeConfig()

	assert.Equal(t, "global system optimize", optimize.CustomPrompts.SystemPrompts.Optimize)
	assert.Equal(t, "global user optimize", optimize.CustomPrompts.UserPrompts.Optimize)
}

func TestGetOptimizeConfigOperationPromptWins(t *testing.T) {
	config := baseAIConfig()
	config.AI.CustomPrompts.SystemPrompts.Optimize = "global system optimize"
	config.AI.Optimize.CustomPrompts.SystemPrompts.Optimize = "operation system optimize"

	optimize := config.GetOptimizeConfig()

	assert.Equal(t, "operation system optimize", optimize.CustomPrompts.SystemPrompts.Optimize)
}

func TestGetOptimizeConfigMaxTokensNotInherited(t *testing.T) {
	config := baseAIConfig()

	optimize := config.GetOptimizeConfig()
	assert.Nil(t, optimize.MaxTokens) // no global default, provider decides

	maxTokens := int32(8192)
	config.AI.Optimize.MaxTokens = &maxTokens
	optimize = config.GetOptimizeConfig()
	if assert.NotNil(t, optimize.MaxTokens) {
		assert.Equal(t, int32(8192), *optimize.MaxTokens)
	}
}

func TestOperationConfigsAreIndependent(t *testing.T) {
	config := baseAIConfig()
	extractTemp := float32(0.1)
	optimizeTemp := float32(0.9)
	config.AI.Extract.Temperature = &extractTemp
	config.AI.Optimize.Temperature = &optimizeTemp

	extract := config.GetExtractConfig()
	optimize := config.GetOptimizeConfig()

	assert.Equal(t, float32(0.1), *extract.Temperature)
	assert.Equal(t, float32(0.9), *optimize.Temperature)
}

func TestGetTogetherConfig(t *testing.T) {
	config := baseAIConfig()
	config.AI.Together = TogetherConfig{
		APIKey:      "together-key",
		BaseURL:     "https://api.together.xyz/v1",
		Model:       "user/llama-3-8b-linkedin-ft",
		Timeout:     120 * time.Second,
		MaxTokens:   4000,
		Temperature: 0.7,
	}

	together := config.GetTogetherConfig()

	assert.Equal(t, "together-key", together.APIKey)
	assert.Equal(t, "https://api.together.xyz/v1", together.BaseURL)
	assert.Equal(t, "user/llama-3-8b-linkedin-ft", together.Model)
	assert.Equal(t, 4000, together.MaxTokens)
}

func TestValidateDefaultModelChoice(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(c *Config)
		expectError bool
	}{
		{
			name:   "empty choice is valid",
			modify: func(c *Config) {},
		},
		{
			name:   "gemini choice is valid",
			modify: func(c *Config) { c.AI.DefaultModelChoice = "gemini" },
		},
		{
			name: "llama3_custom requires together config",
			modify: func(c *Config) {
				c.AI.DefaultModelChoice = "llama3_custom"
			},
			expectError: true,
		},
		{
			name: "llama3_custom with together config is valid",
			modify: func(c *Config) {
				c.AI.DefaultModelChoice = "llama3_custom"
				c.AI.Together.APIKey = "together-key"
				c.AI.Together.Model = "user/llama-3-8b-linkedin-ft"
			},
		},
		{
			name: "unknown choice is rejected",
			modify: func(c *Config) {
				c.AI.DefaultModelChoice = "gpt4"
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := baseAIConfig()
			config.Server = ServerConfig{Host: "localhost", Port: "8080"}
			config.App = AppConfig{
				DefaultFormat:    "json",
				SupportedFormats: []string{"json", "text", "markdown"},
			}
			config.Server.TLS.Mode = "disabled"
			tt.modify(config)

			err := config.Validate()
			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
