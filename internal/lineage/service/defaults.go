package service

const (
	defaultTranslatorCacheSize = 256
	defaultOutputCacheSize     = 256
	defaultReputationCacheSize = 512
	defaultOutputDepth         = 2
	defaultExpandWorkers       = 8

	translatorValuesCache = "tx_value_by_hash"
	translatorHashesCache = "tx_hash_by_value"
	outputsCache          = "outputs_by_value"
	reputationCache       = "reputation"
)
