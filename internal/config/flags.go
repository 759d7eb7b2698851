package config

import (
	"flag"
	"fmt"
	"io"
)

// ParseFlags parses the configuration flags found in args (without the
// program name) on a dedicated flag set and returns the resulting partial
// config together with the remaining positional arguments.
//
// Flags:
//
//	-d database (sqlite file) path
//	-m master credential file path
//	-c/-config json file path with configs
//	-l log file path
//	-password-length default generated password length
//	-kdf-time argon2id iterations
//	-kdf-memory argon2id memory in KiB
//	-kdf-threads argon2id parallelism
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var databaseDSN string
	var masterFile string
	var jsonConfigPath string
	var logFile string
	var passwordLength int
	var kdfTime, kdfMemory, kdfThreads uint

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&databaseDSN, "d", "", "Vault database path")
	fs.StringVar(&masterFile, "m", "", "Master credential file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logFile, "l", "", "Log file path")
	fs.IntVar(&passwordLength, "password-length", 0, "Default generated password length")
	fs.UintVar(&kdfTime, "kdf-time", 0, "Argon2id iterations")
	fs.UintVar(&kdfMemory, "kdf-memory", 0, "Argon2id memory in KiB")
	fs.UintVar(&kdfThreads, "kdf-threads", 0, "Argon2id parallelism")

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("error parsing flags: %w", err)
	}

	if kdfThreads > 255 {
		return nil, nil, fmt.Errorf("%w: kdf-threads must be at most 255", ErrInvalidKDFConfigs)
	}

	return &StructuredConfig{
		App: App{
			PasswordLength: passwordLength,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			MasterFile: masterFile,
		},
		KDF: KDF{
			Time:    uint32(kdfTime),
			Memory:  uint32(kdfMemory),
			Threads: uint8(kdfThreads),
		},
		Log: Log{
			File: logFile,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}
