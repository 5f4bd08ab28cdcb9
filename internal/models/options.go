package models

// Options for the CLI.
type Options struct {
	Debug bool   `doc:"Enable debug logging" short:"d" default:"false"`
	Host  string `doc:"Hostname to listen on" default:"localhost"`
	Port  int    `doc:"Port to listen on" short:"p" default:"5000" validate:"gt=0,lt=65536"`

	Store string `doc:"Review store backend (airtable, postgres, dynamodb, memory)" default:"airtable" validate:"oneof=airtable postgres dynamodb memory"`

	AirtableToken string `doc:"Airtable personal access token" validate:"required_if=Store airtable"`
	AirtableBase  string `doc:"Airtable base ID" validate:"required_if=Store airtable"`
	AirtableTable string `doc:"Airtable table name" default:"Book Reviews"`

	DBHost     string `doc:"Database hostname" default:"localhost"`
	DBPort     int    `doc:"Database port" default:"5432"`
	DBUser     string `doc:"Database username" default:"postgres"`
	DBPassword string `doc:"Database password" default:"password"`
	DBName     string `doc:"Database name" default:"postgres"`

	DynamoTable    string `doc:"DynamoDB table name" default:"BookReviews"`
	DynamoEndpoint string `doc:"DynamoDB endpoint override (e.g. for DynamoDB Local)"`
	AWSRegion      string `doc:"AWS region" default:"eu-central-1"`
	AWSAccessKey   string `doc:"AWS access key ID (uses the default credential chain if empty)"`
	AWSSecretKey   string `doc:"AWS secret access key"`
}
