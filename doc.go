// Package container provides the Omega dependency-injection container: a
// definition-based IoC container with per-kind resolvers, parameter
// autowiring, service providers and decorators.
//
// # Overview
//
// Entries are registered as definitions — data describing how to produce a
// value — and resolved on demand. Get(name) looks up the stored definition,
// dispatches it to the matching resolver, which recurses into nested
// definitions through the same dispatch; the object graph is constructed
// bottom-up, cached, and returned.
//
// # Container lifecycle
//
//  1. Create: c := container.New()
//  2. Register providers: registry.Register(&MyProvider{})
//  3. Boot: registry.Boot()        — safe to resolve everything after this
//  4. Resolve entries
//
// # Registering entries
//
//	// Pre-built value
//	c.Set("config", cfg)
//
//	// Singleton factory — created once, reused
//	c.Singleton("db", func(c *container.Container) any {
//	    return db.Connect(container.MustResolve[*Config](c, "config"))
//	})
//
//	// Transient factory — new value every Get()
//	c.Bind("request-id", func(c *container.Container) any { return newID() })
//
//	// Object definition — constructed and injected on first Get()
//	c.Set("mailer", container.Create(&Mailer{}).
//	    Property("From", container.EnvVarDefault("MAIL_FROM", "noreply@localhost")).
//	    Method("Connect", definition.Value("smtp://localhost")))
//
//	// Alias
//	c.Alias("mail", "mailer")
//
// # Resolving
//
//	// Untyped
//	raw, err := c.Get("mailer")
//
//	// Generic (preferred — no type assertion required)
//	mailer, err := container.Resolve[*Mailer](c, "mailer")
//
//	// Fresh instance with call-time parameters
//	report, err := c.Make("report", map[string]any{"period": "daily"})
//
// # Autowiring
//
// Constructor, factory and method parameters with no bound value are looked
// up by type key: bind the dependency under definition.TypeKey and any
// function parameter of that type resolves automatically.
//
//	c.Set(definition.TypeKey((*Clock)(nil)), container.FactoryOf(NewSystemClock))
//	c.Set("scheduler", container.Create(&Scheduler{}).
//	    ConstructedBy(NewScheduler)) // func NewScheduler(clock Clock) *Scheduler
//
// # Environment variables
//
// Environment definitions read through a pluggable strategy; the default
// chain checks the process environment, then ".env.local" and ".env" via
// godotenv.
//
//	c.Set("db.dsn", container.EnvVar("DATABASE_URL"))
//	c.Set("app.env", container.EnvVarDefault("APP_ENV", "production"))
//
// # Decorators
//
//	c.Extend("logger", func(instance any, c *container.Container) any {
//	    return &TimestampLogger{Inner: instance.(*Logger)}
//	})
//
//	// or as a definition, wrapping the previously registered entry:
//	c.Set("logger", container.Decorate(func(l *Logger, c *container.Container) any {
//	    return &TimestampLogger{Inner: l}
//	}))
//
// # Service providers
//
//	type AppServiceProvider struct{ container.BaseProvider }
//
//	func (p *AppServiceProvider) Register(app *container.Container) {
//	    app.Singleton("mailer", func(c *container.Container) any {
//	        return mail.NewSMTP(container.MustResolve[*Config](c, "config"))
//	    })
//	}
//
//	registry := container.NewProviderRegistry(c)
//	registry.Register(&AppServiceProvider{})
//	registry.Boot()
//
// Deferred providers register their entries only when one of them is first
// resolved:
//
//	type HeavyProvider struct{ container.BaseProvider }
//
//	func (p *HeavyProvider) IsDeferred() bool   { return true }
//	func (p *HeavyProvider) Provides() []string { return []string{"heavy"} }
//	func (p *HeavyProvider) Register(app *container.Container) {
//	    app.Singleton("heavy", func(c *container.Container) any { return heavySetup() })
//	}
//
// # Laziness
//
// Lazy object definitions resolve to a *resolver.Lazy thunk; force it with
// Get or the typed resolver.Force:
//
//	c.Set("search", container.Create(&SearchIndex{}).Lazy())
//	idx, err := resolver.Force[*SearchIndex](container.MustResolve[*resolver.Lazy](c, "search"))
//
// There is no cycle detection: a definition cycle recurses until the stack
// is exhausted. Keep definition graphs acyclic.
package container
