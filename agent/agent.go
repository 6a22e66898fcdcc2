package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/wayfarer-ai/wayfarer/core"
	"github.com/wayfarer-ai/wayfarer/logging"
	"github.com/wayfarer-ai/wayfarer/metrics"
	"github.com/wayfarer-ai/wayfarer/model"
	"github.com/wayfarer-ai/wayfarer/session"
	"github.com/wayfarer-ai/wayfarer/tool"
)

// DefaultMaxToolRounds caps how many tool executions a single chat request
// may trigger before the loop gives up.
const DefaultMaxToolRounds = 10

// errorReply narrates a gateway failure back to the caller.
const errorReply = "Sorry, I encountered an error"

// roundLimitReply is returned when the model keeps requesting tools past the
// round cap.
const roundLimitReply = "Sorry, I was unable to complete the request: it required too many tool calls."

// identityScopedTools receive the authenticated user_id injected into their
// arguments. Any model-supplied value for it is overwritten, never trusted.
var identityScopedTools = map[string]bool{
	"save_preference":  true,
	"load_preferences": true,
}

// Options configure an Agent.
type Options struct {
	MaxToolRounds int
	Logger        logging.Logger
	Metrics       *metrics.Metrics
}

// Agent drives one conversational exchange at a time per user: model call,
// optional tool rounds, final text.
type Agent struct {
	model       model.Model
	sessions    *session.Manager
	registry    *tool.Registry
	definitions []model.ToolDefinition
	maxRounds   int
	logger      logging.Logger
	metrics     *metrics.Metrics
}

// New constructs an Agent over a gateway, session manager, and tool registry.
func New(m model.Model, sessions *session.Manager, registry *tool.Registry, optFns ...func(o *Options)) *Agent {
	opts := Options{MaxToolRounds: DefaultMaxToolRounds}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Metrics == nil {
		opts.Metrics = metrics.New(prometheus.NewRegistry())
	}

	return &Agent{
		model:       m,
		sessions:    sessions,
		registry:    registry,
		definitions: toolDefinitions(registry),
		maxRounds:   opts.MaxToolRounds,
		logger:      opts.Logger,
		metrics:     opts.Metrics,
	}
}

// toolDefinitions converts the registered tools into gateway declarations.
func toolDefinitions(registry *tool.Registry) []model.ToolDefinition {
	tools := registry.Tools()
	defs := make([]model.ToolDefinition, 0, len(tools))
	for _, t := range tools {
		defs = append(defs, model.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return defs
}

// Chat runs one full exchange for the user and returns the reply text. The
// reply is always a displayable string: gateway failures, empty responses,
// and the round cap are narrated in-band rather than returned as errors.
func (a *Agent) Chat(ctx context.Context, userID, message string) string {
	s := a.sessions.GetOrCreate(ctx, userID)
	s.Lock()
	defer s.Unlock()

	s.Append(core.NewUserTurn(message))

	rounds := 0
	for {
		resp, err := a.generate(ctx, s)
		if err != nil {
			a.finish("model_error", rounds)
			return fmt.Sprintf("%s: %v", errorReply, err)
		}
		s.Append(resp.Content)

		switch part := resp.Content.FirstPart().(type) {
		case core.TextPart:
			a.finish("ok", rounds)
			return part.Text

		case core.FunctionCallPart:
			if rounds >= a.maxRounds {
				a.logger.Warn("agent.round_limit", "user_id", userID, "rounds", rounds)
				a.finish("round_limit", rounds)
				return roundLimitReply
			}
			rounds++
			s.Append(core.NewToolResultTurn(a.execute(ctx, userID, part.FunctionCall)))

		default: // no parts, or a shape the loop does not handle
			a.finish("empty_response", rounds)
			return errorReply + "."
		}
	}
}

// generate submits the full session history plus tool declarations to the
// gateway.
func (a *Agent) generate(ctx context.Context, s *core.Session) (*model.Response, error) {
	req := model.Request{Contents: s.Turns(), Tools: a.definitions}

	start := time.Now()
	resp, err := a.model.Generate(ctx, req)
	elapsed := time.Since(start)

	info := a.model.Info()
	logging.LogModelCall(a.logger, info.Name, elapsed, err)
	a.metrics.ModelCallDuration.WithLabelValues(info.Provider).Observe(elapsed.Seconds())
	return resp, err
}

// execute resolves and runs one tool call, returning the function response to
// feed back to the model. Unknown tools and handler failures become error
// responses; they never abort the exchange.
func (a *Agent) execute(ctx context.Context, userID string, call core.FunctionCall) core.FunctionResponse {
	t, ok := a.registry.Lookup(call.Name)
	if !ok {
		a.logger.Warn("agent.tool.unknown", "tool", call.Name, "user_id", userID)
		a.metrics.ToolExecutions.WithLabelValues(call.Name, "unknown").Inc()
		fr := core.NewToolError(call.Name, fmt.Sprintf("Unknown tool: %s", call.Name))
		fr.ID = call.ID
		return fr
	}

	args := make(map[string]any, len(call.Arguments)+1)
	for k, v := range call.Arguments {
		args[k] = v
	}
	if identityScopedTools[call.Name] {
		args["user_id"] = userID
	}

	start := time.Now()
	result, err := t.Call(ctx, args)
	logging.LogToolCall(a.logger, call.Name, time.Since(start), err)

	if err != nil {
		a.metrics.ToolExecutions.WithLabelValues(call.Name, "error").Inc()
		fr := core.NewToolError(call.Name, err.Error())
		fr.ID = call.ID
		return fr
	}
	a.metrics.ToolExecutions.WithLabelValues(call.Name, "success").Inc()
	fr := core.NewToolResult(call.Name, result)
	fr.ID = call.ID
	return fr
}

func (a *Agent) finish(status string, rounds int) {
	a.metrics.ChatRequests.WithLabelValues(status).Inc()
	a.metrics.ToolRounds.Observe(float64(rounds))
}
