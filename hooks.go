package gatewayz

import (
	pkghttp "github.com/gatewayz/gatewayz-go/pkg/http"
)

// HTTPHook allows customizing HTTP request/response handling.
// BeforeRequest may modify the request or abort the attempt by returning an
// error. AfterResponse is called for every attempt, including failed ones.
//
//	client, _ := gatewayz.New(
//	    gatewayz.WithHTTPHook(gatewayz.HeaderHook(map[string]string{
//	        "X-Tenant": "acme",
//	    })),
//	)
type HTTPHook = pkghttp.HTTPHook

// HTTPHookFunc adapts plain functions to HTTPHook.
type HTTPHookFunc = pkghttp.HTTPHookFunc

// HookError reports a call aborted by a BeforeRequest hook.
type HookError = pkghttp.HookError

// RequestAttempt records a single try of a logical request.
type RequestAttempt = pkghttp.RequestAttempt

// AttemptObserver receives every RequestAttempt after it completes.
type AttemptObserver = pkghttp.AttemptObserver

// CombineHooks runs hooks in order as a single hook.
func CombineHooks(hooks ...HTTPHook) HTTPHook {
	return pkghttp.CombineHooks(hooks)
}

// HeaderHook adds fixed headers to every request.
func HeaderHook(headers map[string]string) HTTPHook {
	return pkghttp.HeaderHook(headers)
}

// LoggingHook logs method, path, status and duration of every attempt at
// debug level.
func LoggingHook(logger StructuredLogger) HTTPHook {
	return pkghttp.LoggingHook(logger)
}
