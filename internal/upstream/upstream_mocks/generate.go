// Package upstream_mocks contains generated mocks for the upstream package.
package upstream_mocks

//go:generate mockgen -source=../client.go -destination=mock_source.go -package=upstream_mocks
