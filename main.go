// Project Structure Overview
/*
product-comparator/
├── cmd/
│   ├── server/
│   │   └── main.go
│   └── seed/
│       └── main.go
├── internal/
│   ├── config/
│   │   ├── config.go
│   │   └── database.go
│   ├── models/
│   │   ├── catalog.go
│   │   └── common.go
│   ├── handlers/
│   │   ├── catalog.go
│   │   └── comparison.go
│   ├── services/
│   │   ├── catalog_service.go
│   │   ├── comparison_service.go
│   │   └── storage_service.go
│   ├── middleware/
│   │   ├── cors.go
│   │   ├── rate_limit.go
│   │   ├── i18n.go
│   │   └── logging.go
│   ├── database/
│   │   ├── connection.go
│   │   └── seed.go
│   ├── i18n/
│   │   ├── i18n.go
│   │   ├── locales/
│   │   │   ├── es.json
│   │   │   └── en.json
│   │   └── keys.go
│   ├── utils/
│   │   ├── params.go
│   │   ├── validator.go
│   │   └── response.go
│   ├── router/
│   │   └── router.go
│   └── tests/
├── pkg/
│   └── comparator/
│       ├── types.go
│       ├── errors.go
│       ├── client.go
│       ├── selection.go
│       ├── render.go
│       ├── picker.go
│       ├── carousel.go
│       └── httpclient.go
├── go.mod
└── go.sum
*/

package productcomparator

// This file shows the project structure and main entry point
// The actual implementation will be in separate files as shown in the structure above
