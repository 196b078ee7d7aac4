//go:generate mockgen -source=../party_repository.go -destination=./mock_party_repository.go -package=mocks
//go:generate mockgen -source=../party_cache.go      -destination=./mock_party_cache.go      -package=mocks
//go:generate mockgen -source=../validator.go        -destination=./mock_validator.go        -package=mocks
//go:generate mockgen -source=../event_publisher.go  -destination=./mock_event_publisher.go  -package=mocks
//go:generate mockgen -source=../party_service.go    -destination=./mock_party_service.go    -package=mocks

package mocks
