package common

import (
	"os"
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	productionEnv = "production"

	TestProjectID = "nova-checkout-dev"

	defaultSiteURL = "http://localhost:8080"
)

var (
	ProjectID string

	// Production flag indicating if app is running the production backend
	Production bool

	// IsLocalhost flag indicating if app is running on localhost
	IsLocalhost bool

	GAEService string
	GAEVersion string

	// SiteURL is the public site the checkout redirects back to, without a trailing slash.
	SiteURL string
)

func init() {
	initEnvVariables()
}

func initEnvVariables() {
	ProjectID = GetEnv("GOOGLE_CLOUD_PROJECT", "")
	IsLocalhost = gin.Mode() != gin.ReleaseMode
	GAEService = GetEnv("GAE_SERVICE", "nova-checkout")
	GAEVersion = GetEnv("GAE_VERSION", "localhost")
	Production = GetEnv("ENV", "") == productionEnv
	SiteURL = strings.TrimSuffix(GetEnv("SITE_URL", defaultSiteURL), "/")
}

// GetEnv returns the value of the environment variable named by key, or fallback if it is not present.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return fallback
}

// SiteRelativeURL joins path to the configured site url.
func SiteRelativeURL(path string) string {
	return SiteURL + path
}
