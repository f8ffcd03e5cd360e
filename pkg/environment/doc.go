// Package environment names the deployment environment the neologizer runs in
// and carries it through context.Context so handlers and log records can see
// it.
//
//	env := environment.Parse(cfg.Env)
//	router.Use(environment.Middleware(env))
//	log := logger.New(logger.WithContextExtractors(environment.LoggerExtractor()))
package environment
