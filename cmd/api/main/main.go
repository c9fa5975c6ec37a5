//go:build lambda
// +build lambda

package main

import (
	"context"
	"os"

	"github.com/univoucher/univoucher-api/internal/logger"
	"github.com/univoucher/univoucher-api/internal/server"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           UniVoucher Inventory API
// @version         1.0
// @description     Card validation, inventory admission and internal-wallet minting for UniVoucher gift cards
// @BasePath        /

var ginLambda *ginadapter.GinLambda

func init() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "prod"
	}
	logger.InitLogger(stage)

	r := gin.New()
	r.Use(gin.Recovery())

	server.InitializeHandlers()
	server.InitializeRoutes(r)

	ginLambda = ginadapter.New(r)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Bodies carry card secrets; only the request shape is dumped.
	logger.Debug("Received Lambda request",
		zap.String("path", req.Path),
		zap.String("method", req.HTTPMethod),
		zap.String("request_context", spew.Sdump(req.RequestContext)),
	)

	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer logger.Sync()
	lambda.Start(Handler)
}
