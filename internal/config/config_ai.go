package config

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	// UseSystemPrompts: apply global default only if not explicitly set
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetExtractConfig returns the AI configuration for vision extraction operations with fallback to global config
func (c *Config) GetExtractConfig() OperationAIConfig {
	config := c.AI.Extract

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply extract-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.Extract == "" {
		config.CustomPrompts.SystemPrompts.Extract = c.AI.CustomPrompts.SystemPrompts.Extract
	}
	if config.CustomPrompts.UserPrompts.Extract == "" {
		config.CustomPrompts.UserPrompts.Extract = c.AI.CustomPrompts.UserPrompts.Extract
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.ExtractFile == "" {
		config.CustomPrompts.SystemPrompts.ExtractFile = c.AI.CustomPrompts.SystemPrompts.ExtractFile
	}
	if config.CustomPrompts.UserPrompts.ExtractFile == "" {
		config.CustomPrompts.UserPrompts.ExtractFile = c.AI.CustomPrompts.UserPrompts.ExtractFile
	}

	return config
}

// GetOptimizeConfig returns the AI configuration for report generation operations with fallback to global config
func (c *Config) GetOptimizeConfig() OperationAIConfig {
	config := c.AI.Optimize

	// Apply common defaults
	c.applyOperationDefaults(&config)

	// Apply optimize-specific prompt fallbacks
	if config.CustomPrompts.SystemPrompts.Optimize == "" {
		config.CustomPrompts.SystemPrompts.Optimize = c.AI.CustomPrompts.SystemPrompts.Optimize
	}
	if config.CustomPrompts.UserPrompts.Optimize == "" {
		config.CustomPrompts.UserPrompts.Optimize = c.AI.CustomPrompts.UserPrompts.Optimize
	}
	// Also copy file paths for potential later loading
	if config.CustomPrompts.SystemPrompts.OptimizeFile == "" {
		config.CustomPrompts.SystemPrompts.OptimizeFile = c.AI.CustomPrompts.SystemPrompts.OptimizeFile
	}
	if config.CustomPrompts.UserPrompts.OptimizeFile == "" {
		config.CustomPrompts.UserPrompts.OptimizeFile = c.AI.CustomPrompts.UserPrompts.OptimizeFile
	}

	return config
}

// GetTogetherConfig returns the Together AI completion configuration
func (c *Config) GetTogetherConfig() TogetherConfig {
	return c.AI.Together
}

// GetLoadedExtractPrompts returns a copy of the loaded prompts for extract operation
func (c *Config) GetLoadedExtractPrompts() OperationLoadedPrompts {
	return loadedPrompts.Extract
}

// GetLoadedOptimizePrompts returns a copy of the loaded prompts for optimize operation
func (c *Config) GetLoadedOptimizePrompts() OperationLoadedPrompts {
	return loadedPrompts.Optimize
}

// GetLoadedGlobalPrompts returns a copy of the loaded global prompts
func (c *Config) GetLoadedGlobalPrompts() LoadedPrompts {
	return loadedPrompts.Global
}
