// Package notionhub is the client-side core of the Notion-Hub admin
// console: credential lifecycle, session state, menu-derived route access,
// and the per-navigation route guard.
//
// The package is assembled through [Builder]: configuration, the Redis
// credential store, the typed API client, the [session.Session], and the
// [Guard] are constructed once at bootstrap and injected — there is no
// process-wide singleton anywhere in the module.
//
// # Architecture boundaries
//
// notionhub is the public wiring surface. The moving parts live in
// subpackages: credential (durable token store), menu (tree flattening),
// session (authorization state), api (typed backend client). None of them
// import this package back.
//
// # Failure posture
//
// Nothing in this core is fatal. Transport failures degrade to boolean
// returns plus a logged diagnostic; authentication failures degrade to a
// redirect-to-login; authorization failures degrade to a redirect-to-home
// with a user-visible notice. The guard resolves every navigation to
// exactly one of proceed, redirect-to-login, or redirect-to-home.
package notionhub
