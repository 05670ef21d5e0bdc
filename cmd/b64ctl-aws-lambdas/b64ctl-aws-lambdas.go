package main

import (
	"b64ctl/internal/lambdas"
	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"os"
)

func defaultHandler() (events.APIGatewayProxyResponse, error) {
	return events.APIGatewayProxyResponse{Body: "Unknown lambda type", StatusCode: 200}, nil
}

func main() {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	switch lambdaType := lambdas.LambdaType(os.Getenv("LAMBDA")); lambdaType {
	case lambdas.LambdaSlashCommand:
		lambda.Start(lambdas.NewSlashCommandHandler().Handle)
	default:
		lambda.Start(defaultHandler)
	}
}
