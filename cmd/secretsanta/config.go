package main

import "time"

type Config struct {
	DBPath          string        `env:"SECRET_SANTA_DB,default=secretsanta.db"`
	LogLevel        string        `env:"LOG_LEVEL,default=ERROR"`
	CaseInsensitive bool          `env:"SECRET_SANTA_CASE_INSENSITIVE,default=false"`
	Colours         bool          `env:"SECRET_SANTA_COLOURS,default=true"`
	MaxSteps        int           `env:"SECRET_SANTA_MAX_STEPS,default=0"`
	TimeLimit       time.Duration `env:"SECRET_SANTA_TIME_LIMIT,default=0s"`
	Format          string        `env:"SECRET_SANTA_FORMAT,default=table"`
}
