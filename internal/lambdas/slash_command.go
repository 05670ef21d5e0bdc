package lambdas

import (
	"b64ctl/internal/b64"
	"b64ctl/internal/lambdas/protocol"
	"b64ctl/internal/plugin"
	"context"
	"encoding/json"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"net/http"
)

type SlashCommandHandler struct {
	Plugin plugin.SlashCommands
}

func NewSlashCommandHandler() *SlashCommandHandler {
	return &SlashCommandHandler{Plugin: plugin.New()}
}

// Handle runs the slash command described by the request body.
// Plugin failures are answered, not returned, so the Lambda invocation itself never fails.
func (h *SlashCommandHandler) Handle(_ context.Context, request events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	requestId := request.RequestContext.RequestID
	if requestId == "" {
		requestId = uuid.New().String()
	}
	logger := log.With().Str("request_id", requestId).Logger()

	var slashRequest protocol.SlashCommandRequest
	if err := json.Unmarshal([]byte(request.Body), &slashRequest); err != nil {
		logger.Warn().Err(err).Msg("invalid slash command request")
		return errorResponse(http.StatusBadRequest, protocol.BadRequestKind, "invalid request body: "+err.Error()), nil
	}

	logger.Info().Str("command", slashRequest.Command).Int("args", len(slashRequest.Args)).Msg("running slash command")
	result, err := h.Plugin.Run(slashRequest.Command, slashRequest.Args)
	if err != nil {
		kind := "Unknown"
		if k, ok := b64.KindOf(err); ok {
			kind = k.String()
		}
		logger.Info().Str("kind", kind).Msg("slash command failed")
		return errorResponse(http.StatusUnprocessableEntity, kind, err.Error()), nil
	}

	body, err := json.Marshal(result)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}
	return jsonResponse(http.StatusOK, body), nil
}

func errorResponse(status int, kind, message string) events.APIGatewayProxyResponse {
	body, _ := json.Marshal(protocol.ErrorResponse{Kind: kind, Error: message})
	return jsonResponse(status, body)
}

func jsonResponse(status int, body []byte) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}
