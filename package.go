// Package textreact drives ReAct (reasoning and acting) loops over plain text
// completion models.
//
// A run interleaves model-written thoughts and actions with observations
// fetched from a lookup service, feeding the growing transcript back to the
// model until it writes an answer or the step budget runs out.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "context"
//	    "fmt"
//	    "os"
//
//	    "github.com/rickchristie/textreact/agents/react"
//	    "github.com/rickchristie/textreact/lookup/wikipedia"
//	    "github.com/rickchristie/textreact/models"
//	)
//
//	func main() {
//	    // 1. Create a completer from any LangChainGo model
//	    completer, err := models.NewOpenAICompleter("gpt-4o-mini", os.Getenv("OPENAI_API_KEY"), "")
//	    if err != nil {
//	        panic(err)
//	    }
//
//	    // 2. Create a lookup
//	    wiki := wikipedia.New(wikipedia.DefaultConfig())
//
//	    // 3. Build the agent and run it
//	    agent := react.NewAgent(completer, wiki).WithMaxSteps(7)
//	    result, err := agent.Run(context.Background(), react.Request{
//	        Context:  react.DefaultContext,
//	        Exemplar: react.DefaultExemplar,
//	        Question: "Who was born first, Ronald Reagan or Gerald Ford?",
//	    })
//	    if err != nil {
//	        panic(err)
//	    }
//	    if result.Resolved() {
//	        fmt.Println(result.Answer)
//	    }
//	}
//
// # Collaborators
//
// The loop depends on two interfaces: [Completer] (prompt in, completion
// out) and [Lookup] (query in, snippet out). Both are synchronous and both
// failures are fatal for the run. The models and lookup/wikipedia packages
// provide the standard implementations.
//
// # Transcript
//
// [Transcript] is the only state carried between steps. See its
// documentation for the exact text layout.
//
// # Events
//
// Every component accepts an optional [Publisher]. Subscribers implement
// one or more of the *Subscriber interfaces in this package and are
// registered with events.Registry. [Stats] is a subscriber that keeps
// counters; the loggers package provides zap, activity and YAML subscribers.
package textreact
