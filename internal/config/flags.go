// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Jess Leroux

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args (normally os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "12h", "30m")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-backend-address backend data-service endpoint (client)
//	-api-key backend service key (client)
//	-catalog-url external item-catalog endpoint (client)
//	-allowlist comma-separated email:pseudo pairs (server)
//	-reconnect-interval change-feed reconnect interval (client)
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("pigeon-raiders", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var tokenSignKey string
	var tokenIssuer string
	var tokenDuration time.Duration
	var requestTimeout time.Duration
	var backendAddress string
	var apiKey string
	var catalogURL string
	var allowlist string
	var reconnectInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 12h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&backendAddress, "backend-address", "", "Backend data-service endpoint")
	fs.StringVar(&apiKey, "api-key", "", "Backend service key")
	fs.StringVar(&catalogURL, "catalog-url", "", "External item-catalog endpoint")
	fs.StringVar(&allowlist, "allowlist", "", "Comma-separated email:pseudo pairs")
	fs.DurationVar(&reconnectInterval, "reconnect-interval", 0, "Change-feed reconnect interval")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress: backendAddress,
			APIKey:      apiKey,
		},
		Catalog: Catalog{
			URL: catalogURL,
		},
		Players: Players{
			Allowlist: parseAllowlistFlag(allowlist),
		},
		Workers: Workers{
			ReconnectInterval: reconnectInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// parseAllowlistFlag converts a comma-separated list of "email:pseudo" pairs
// into an [Allowlist]. Malformed pairs are skipped.
func parseAllowlistFlag(raw string) Allowlist {
	if raw == "" {
		return nil
	}

	list := make(Allowlist)
	for _, pair := range strings.Split(raw, ",") {
		email, pseudo, found := strings.Cut(pair, ":")
		if !found || email == "" || pseudo == "" {
			continue
		}
		list[strings.TrimSpace(email)] = strings.TrimSpace(pseudo)
	}

	if len(list) == 0 {
		return nil
	}
	return list
}

// String returns the address in "host:port" form, or an empty string when
// neither host nor port has been set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set implements flag.Value. It accepts "[host]:[port]" and stores the parts.
func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(value)
	if err != nil {
		return errors.New("need address in a form host:port")
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be an integer")
	}

	a.Host = host
	a.Port = port
	return nil
}
