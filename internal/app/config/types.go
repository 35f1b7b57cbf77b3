package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger     Logger
		RabbitMQ   RabbitMQ
		Supertoken Supertoken
	}
	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Enabled  bool
		Port     string
		Host     string
		Username string
		Password string
	}
	Supertoken struct {
		ConnectionURI   string
		APIKey          string
		AppName         string
		ApiDomain       string
		WebsiteDomain   string
		ApiBasePath     string
		WebsiteBasePath string
	}
)

type InternalConfig struct {
	App          App
	Backend      Backend
	Identity     Identity
	JWT          JWT
	Notification Notification
	RabbitMQ     AppRabbitMQ
}

type App struct {
	Env                        string
	Port                       string
	Version                    string
	Timezone                   string
	EndpointPrefix             string
	MaxRequests                int
	ShutdownTimeout            int
	RequestBodyLimitInMegabyte int
	AuthMaxRequestsPerMinute   int
	AuthBlockTimeInMinutes     int
	SuperadminEmails           []string
	SessionExpiredTimeInHours  int
	WorkspaceSweepCronSpec     string
}

type Backend struct {
	BaseUrl                string
	RequestTimeoutInSecond int
}

type Identity struct {
	TenantID             string
	MaxRequestsPerSecond int
}

type JWT struct {
	Secret        string
	ExpTimeInHour int
}

type Notification struct {
	DisplayDurationInMillisecond int
}

type AppRabbitMQ struct {
	StaffEventsQueue string
}
