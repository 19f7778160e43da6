// Package mefrp provides a client for the MEFrp proxy-management API.
//
// MEFrp hosts frp tunnels ("proxies") on a fleet of public nodes. This package
// turns its JSON REST endpoints into typed Go calls and takes care of the
// protocol details every call shares: bearer authentication, the
// {code, message, data} response envelope, error classification and strict
// decoding of response records.
//
// # Execution modes
//
// Two clients share the same dispatcher and endpoint surface:
//
//   - Client (New): every call opens its own HTTP session and releases it when
//     the call returns.
//   - AsyncClient (NewAsync): all calls share one lazily created session for the
//     client's lifetime. It is safe for many goroutines at once and must be
//     released with Close. Go starts any operation on its own goroutine and
//     returns a Future.
//
// A caller-supplied *http.Client (WithHTTPClient) is borrowed: the client uses
// it but never closes it.
//
// # Usage
//
//	client := mefrp.New(mefrp.WithTimeout(15 * time.Second))
//	if _, err := client.Login(ctx, mefrp.LoginRequest{
//		Username:     "alice",
//		Password:     "secret",
//		CaptchaToken: captcha,
//	}); err != nil {
//		log.Fatal(err)
//	}
//
//	list, err := client.GetProxyList(ctx)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Non-blocking usage:
//
//	ac := mefrp.NewAsync(mefrp.WithToken(token))
//	defer ac.Close()
//
//	info := mefrp.Go(ctx, ac.GetUserInfo)
//	stats := mefrp.Go(ctx, ac.GetStatistics)
//	user, err := info.Await()
//
// # Errors
//
// Every failed call returns exactly one of *AuthError, *APIError,
// *NetworkError or *DecodeError. Use errors.As to inspect them, or KindOf to
// get an ErrorKind:
//
//	switch mefrp.KindOf(err) {
//	case mefrp.KindAuth:
//		// token missing, expired or revoked
//	case mefrp.KindNetwork:
//		// connection failure or timeout
//	}
//
// Nothing is retried, cached or rate limited.
package mefrp
