package main

var opts struct {
	HTTP struct {
		Enabled  bool   `long:"enabled" description:"enable the REST API server" env:"ENABLED"`
		BindAddr string `long:"bind-addr" description:"address to bind the REST API server" env:"BIND_ADDR" default:":8000"`
	} `group:"http" namespace:"http" env-namespace:"HTTP"`

	GRPC struct {
		BindAddr string `long:"bind-addr" description:"address to bind grpc server" env:"BIND_ADDR" default:":3000"`
	} `group:"grpc" namespace:"grpc" env-namespace:"GRPC"`

	Engine struct {
		Workers           int `long:"workers" description:"number of chunks for parallel sorts (0 = GOMAXPROCS)" env:"WORKERS" default:"0"`
		ParallelThreshold int `long:"parallel-threshold" description:"minimum number of values to sort in parallel" env:"PARALLEL_THRESHOLD" default:"65536"`
	} `group:"engine" namespace:"engine" env-namespace:"ENGINE"`

	Cache struct {
		Size      int `long:"size" description:"number of cached results (0 disables the cache)" env:"SIZE" default:"1024"`
		MaxValues int `long:"max-values" description:"longest input that is cached" env:"MAX_VALUES" default:"10000"`
	} `group:"cache" namespace:"cache" env-namespace:"CACHE"`

	InitTimeout int  `long:"init-timeout" description:"initialization timeout (ms)" env:"INIT_TIMEOUT" default:"5000"`
	Verbose     bool `long:"verbose" description:"verbose mode" env:"VERBOSE"`
}
