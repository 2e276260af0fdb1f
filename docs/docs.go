// Package docs registers the swagger definition served at /swagger.
// Maintained by hand; regenerate with `swag init` after handler
// annotation changes and reconcile.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/dashboard/analytics/day-of-week": {
            "get": {
                "description": "Returns order counts per weekday (Monday-first) for the filtered window",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Day-of-week breakdown",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/analytics/kpis": {
            "get": {
                "description": "Returns aggregate revenue and order KPIs for the filtered window",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Dashboard KPIs",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/analytics/origins": {
            "get": {
                "description": "Returns traffic origin breakdown with newsletter and session-page rates",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Origin breakdown",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/analytics/sales-trend": {
            "get": {
                "description": "Returns per-day totals split by free and paid tiers",
                "produces": ["application/json"],
                "tags": ["analytics"],
                "summary": "Sales trend",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/customers/countries": {
            "get": {
                "description": "Returns top countries by order count for the filtered window",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Country breakdown",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/customers/metrics": {
            "get": {
                "description": "Returns unique customer, recurrence and country metrics over the full dataset",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Customer metrics",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/customers/recurrent": {
            "get": {
                "description": "Returns customers with two or more orders, most active first",
                "produces": ["application/json"],
                "tags": ["customers"],
                "summary": "Recurrent customers",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/data": {
            "get": {
                "description": "Returns the cached Airtable snapshot (orders, products, clients)",
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Dashboard snapshot",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/data/refresh": {
            "post": {
                "description": "Forces a fresh Airtable fetch, bypassing the snapshot cache",
                "produces": ["application/json"],
                "tags": ["data"],
                "summary": "Refresh snapshot",
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/insights/summary": {
            "post": {
                "description": "Generates an AI executive summary from the filtered dataset",
                "produces": ["application/json"],
                "tags": ["insights"],
                "summary": "Executive summary",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"},
                    "503": {"description": "Service Unavailable"}
                }
            }
        },
        "/dashboard/products/combinations": {
            "get": {
                "description": "Returns the most frequent product pairs bought together",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Product combinations",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/products/ranking": {
            "get": {
                "description": "Returns per-product download counts and unique clients",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Product ranking",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        },
        "/dashboard/products/version-split": {
            "get": {
                "description": "Returns download totals split into free and paid tiers",
                "produces": ["application/json"],
                "tags": ["products"],
                "summary": "Version split",
                "parameters": [
                    {"type": "string", "name": "date_range", "in": "query"},
                    {"type": "string", "name": "version", "in": "query"},
                    {"type": "string", "name": "device", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "502": {"description": "Bad Gateway"}
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8081",
	BasePath:         "/api/v1",
	Schemes:          []string{"http"},
	Title:            "ConsultBI Dashboard API",
	Description:      "Sales analytics API for the ConsultBI dashboard, backed by Airtable",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
