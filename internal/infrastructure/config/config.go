package config

import "github.com/kelseyhightower/envconfig"

// App is the environment-backed application configuration. godotenv autoload
// in main makes a local .env visible before this is processed.

type App struct {
	HTTPAddr  string `envconfig:"HTTP_ADDR" default:":8080"`
	JWTSecret string `envconfig:"JWT_SECRET" required:"true"`

	// AWS / DynamoDB. Local DynamoDB accepts any credentials but the SDK
	// requires some, hence the "local" defaults.
	AWSRegion          string `envconfig:"AWS_REGION" default:"us-east-1"`
	AWSAccessKeyID     string `envconfig:"AWS_ACCESS_KEY_ID" default:"local"`
	AWSSecretAccessKey string `envconfig:"AWS_SECRET_ACCESS_KEY" default:"local"`
	DynamoDBEndpoint   string `envconfig:"DYNAMODB_ENDPOINT"`

	BookingsTable      string `envconfig:"BOOKINGS_TABLE" default:"bookings"`
	ServicesTable      string `envconfig:"SERVICES_TABLE" default:"services"`
	NotificationsTable string `envconfig:"NOTIFICATIONS_TABLE" default:"notifications"`
	ReviewsTable       string `envconfig:"REVIEWS_TABLE" default:"reviews"`
}

func Load() (App, error) {
	var c App
	err := envconfig.Process("", &c)
	return c, err
}
