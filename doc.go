// Package gatewayz provides a Go client for the Gatewayz AI gateway API.
//
// The client wraps every call in a bounded retry loop with a per-attempt
// timeout and reports failures as *APIError values that carry the HTTP
// status and a coarse Kind.
//
// # Quick Start
//
//	client, err := gatewayz.New(
//	    gatewayz.WithCredential(os.Getenv("GATEWAYZ_API_KEY")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	models, err := client.GetModels(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Configuration
//
// The client can be configured with options:
//
//	client, err := gatewayz.New(
//	    gatewayz.WithBaseURL("https://api.gatewayz.ai"),
//	    gatewayz.WithTimeout(10 * time.Second),
//	    gatewayz.WithRetryAttempts(5),
//	    gatewayz.WithRetryDelay(500 * time.Millisecond),
//	)
//
// or from the environment and ~/.config/gatewayz/config.yaml:
//
//	client, err := gatewayz.NewFromEnv()
//
// # Retries
//
// Network failures, attempts that exceed Timeout, rate limiting (429) and
// server errors (5xx) are retried. The delay before attempt n+1 is
// RetryDelay * n. Other 4xx responses, including 401 and a 408 sent by the
// server, fail immediately.
//
// # Sessions
//
// Session tracks sign-in state on top of a Client, refreshes cached balance
// and profile data, and drops the credential when the server rejects it:
//
//	session := gatewayz.NewSession(client, gatewayz.NewMemoryStore(),
//	    gatewayz.WithOnAuthExpired(func() { fmt.Println("please sign in again") }),
//	)
//	if err := session.SignIn(key); err != nil {
//	    log.Fatal(err)
//	}
//	if err := session.RefreshUserData(ctx); err != nil {
//	    log.Println(gatewayz.ErrorMessage(err))
//	}
//
// # Thread Safety
//
// Client and Session are safe for concurrent use. The credential is read
// once per logical request, before the first attempt.
package gatewayz

// Version is the SDK version sent in the User-Agent header.
const Version = "0.4.0"
