package main

import (
	"context"
	"net/http"

	"cloud-dictionary-api/internal/handlers"
	"cloud-dictionary-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	cm := lambda.GetConnectionManager()
	warm := cm.IsHealthy()

	container, err := cm.GetContainer(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to initialize container")
		resp, _ := lambda.JSON(http.StatusInternalServerError, handlers.ErrorResponse{Error: handlers.MsgCouldNotRetrieveList})
		return resp.ToAPIGateway(), nil
	}

	container.Logger.WithField("warm_start", warm).Debug("Handling request")

	termHandler := handlers.NewTermHandler(container.TermService, container.Logger)
	return lambda.Adapt(termHandler.HandleSearch)(ctx, event)
}

func main() {
	awslambda.Start(handler)
}
