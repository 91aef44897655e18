package handlers

// @title Cloud Dictionary API
// @version 1.0
// @description Lookup and search over a dictionary of cloud computing terms

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8081
// @BasePath /

// @tag.name terms
// @tag.description Term lookup and search
