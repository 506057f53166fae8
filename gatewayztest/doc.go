// Package gatewayztest provides test helpers for code that uses the
// gatewayz client.
//
// MockServer records every request and answers with scripted responses:
//
//	server := gatewayztest.NewMockServer()
//	defer server.Close()
//
//	server.Sequence(
//	    gatewayztest.Status(http.StatusServiceUnavailable),
//	    gatewayztest.JSON(http.StatusOK, gatewayztest.SampleModels()),
//	)
//
//	client, _ := gatewayz.New(gatewayz.WithBaseURL(server.URL))
//	models, err := client.GetModels(ctx)
//	// server.RequestCount() == 2
package gatewayztest
