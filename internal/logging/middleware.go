package logging

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// NewMiddleware attaches a LogData collector to every request so handlers can
// record timings, and emits one summary line when the operation completes.
func NewMiddleware(log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := NewLogData(log)
		endTimer := logData.AddTiming("duration")

		ctx = huma.WithValue(ctx, logDataContextKey{}, logData)
		next(ctx)
		endTimer()

		logData.AddData("status", ctx.Status())
		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}
