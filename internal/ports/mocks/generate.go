//go:generate mockgen -source=../catalog.go      -destination=./mock_catalog.go      -package=mocks
//go:generate mockgen -source=../validator.go    -destination=./mock_validator.go    -package=mocks
//go:generate mockgen -source=../logger.go       -destination=./mock_logger.go       -package=mocks
//go:generate mockgen -source=../confirmation.go -destination=./mock_confirmation.go -package=mocks

package mocks
