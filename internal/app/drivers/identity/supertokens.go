package identity

import (
	"fmt"
	"net/http"

	"clinic-dashboard-service/internal/app/config"

	"github.com/supertokens/supertokens-golang/recipe/emailpassword"
	"github.com/supertokens/supertokens-golang/recipe/emailpassword/epmodels"
	"github.com/supertokens/supertokens-golang/recipe/emailverification"
	"github.com/supertokens/supertokens-golang/recipe/emailverification/evmodels"
	"github.com/supertokens/supertokens-golang/recipe/session"
	"github.com/supertokens/supertokens-golang/supertokens"
	"go.uber.org/zap"
)

// NewSupertokens initializes the SDK that stores dashboard credentials. The
// email links it sends point at the dashboard website.
func NewSupertokens(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig, log *zap.Logger) {
	apiBasePath := fmt.Sprintf("/%s/%s%s", internalConfig.App.EndpointPrefix, internalConfig.App.Version, driverConfig.Supertoken.ApiBasePath)
	websiteBasePath := driverConfig.Supertoken.WebsiteBasePath

	connectionInfo := &supertokens.ConnectionInfo{
		ConnectionURI: driverConfig.Supertoken.ConnectionURI,
		APIKey:        driverConfig.Supertoken.APIKey,
	}

	appInfo := supertokens.AppInfo{
		AppName:         driverConfig.Supertoken.AppName,
		APIDomain:       driverConfig.Supertoken.ApiDomain,
		WebsiteDomain:   driverConfig.Supertoken.WebsiteDomain,
		APIBasePath:     &apiBasePath,
		WebsiteBasePath: &websiteBasePath,
	}

	recipeList := []supertokens.Recipe{
		emailpassword.Init(&epmodels.TypeInput{}),
		emailverification.Init(evmodels.TypeInput{
			Mode: evmodels.ModeOptional,
		}),
		session.Init(nil),
	}

	err := supertokens.Init(supertokens.TypeInput{
		OnSuperTokensAPIError: func(err error, req *http.Request, res http.ResponseWriter) {
			log.Error("supertokens API error", zap.Error(err))
		},
		Supertokens: connectionInfo,
		AppInfo:     appInfo,
		RecipeList:  recipeList,
	})
	if err != nil {
		log.Fatal("Failed to initialize supertokens", zap.String("connection_uri", connectionInfo.ConnectionURI), zap.Error(err))
	}

	log.Info("Successfully initialized supertokens SDK", zap.String("connection_uri", connectionInfo.ConnectionURI))
}
