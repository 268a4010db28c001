// Package wordpress provides a client for the remote WordPress REST API.
//
// Only the read side needed by relationship resolution is implemented:
// looking terms up by slug in a taxonomy collection. The client makes a
// single request per lookup and never retries; callers decide how to
// degrade on failure.
//
// Authentication, in order of preference:
//   - Bearer token (Blog.Token) through an oauth2 static token source
//   - HTTP basic auth with an application password (Blog.Login, Blog.Password)
//   - Anonymous, which is enough for public taxonomies
package wordpress
