// Package loggers provides event subscribers that render textreact activity.
//
//   - [Zap] writes one structured zap entry per event.
//   - [Activity] prints the human-readable trace of a run: bold step headers,
//     the prompt sent to the model and the response.
//   - [YAML] writes every finished run, transcript included, as a YAML document.
//
// Register any of them with an events.Registry:
//
//	registry := events.NewRegistry().
//	    Subscribe(loggers.NewZap(logger)).
//	    Subscribe(loggers.NewActivity(os.Stdout))
package loggers
