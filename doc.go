/*
Package variantcatalog is the variant catalog backend: products, their color
and size variants, colors and product images, kept consistent by a catalog
engine in front of the record store.

	variant-catalog/
	├── cmd/
	│   └── server/
	│       └── main.go
	├── internal/
	│   ├── config/
	│   │   ├── config.go
	│   │   └── database.go
	│   ├── database/
	│   │   └── connection.go
	│   ├── models/
	│   │   ├── common.go
	│   │   ├── product.go
	│   │   ├── variant.go
	│   │   ├── color.go
	│   │   └── image.go
	│   ├── store/
	│   │   ├── store.go
	│   │   ├── gorm.go
	│   │   └── memory.go
	│   ├── catalog/
	│   │   ├── engine.go
	│   │   ├── query.go
	│   │   └── errors.go
	│   ├── services/
	│   │   ├── catalog_service.go
	│   │   ├── storage_service.go
	│   │   └── seed.go
	│   ├── handlers/
	│   │   ├── product.go
	│   │   ├── variant.go
	│   │   ├── color.go
	│   │   ├── image.go
	│   │   ├── request.go
	│   │   └── responses.go
	│   ├── middleware/
	│   │   ├── cors.go
	│   │   ├── i18n.go
	│   │   ├── logging.go
	│   │   └── rate_limit.go
	│   ├── i18n/
	│   │   ├── i18n.go
	│   │   ├── keys.go
	│   │   └── locales/
	│   │       ├── en.json
	│   │       └── tr.json
	│   ├── utils/
	│   │   ├── response.go
	│   │   └── validator.go
	│   ├── router/
	│   │   └── router.go
	│   └── tests/
	│       └── catalog_api_test.go
	└── go.mod

The server entry point is cmd/server.
*/
package variantcatalog
