// Package grpc provides gRPC server interceptors that run the jwtgate core
// over the "authorization" metadata entry.
//
// # Basic Usage
//
//	jwtValidator, err := validator.New(validator.MustNewSecret(secret))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	gateCore, err := core.New(core.WithVerifier(jwtValidator))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	interceptor, err := jwtgrpc.New(gateCore,
//	    jwtgrpc.WithExcludedMethods("/grpc.health.v1.Health/Check"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	server := grpc.NewServer(
//	    grpc.UnaryInterceptor(interceptor.UnaryServerInterceptor()),
//	    grpc.StreamInterceptor(interceptor.StreamServerInterceptor()),
//	)
//
// # Errors
//
// Missing headers and bad signatures become codes.Unauthenticated with the
// same messages the HTTP gate writes. Token faults are returned unchanged,
// which gRPC reports as codes.Unknown.
//
// gRPC calls are always POST, so the OPTIONS pass-through never applies.
package grpc
