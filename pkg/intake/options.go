package intake

import "net/http"

// DefaultEndpoint is the contact-intake endpoint used when no override is
// supplied.
const DefaultEndpoint = "https://api.example.com/v1/contact"

type Options struct {
	// Endpoint is the absolute URL the submission is POSTed to.
	Endpoint string
	// HTTPClient performs the request. Submit makes exactly one attempt; any
	// timeout policy lives on the injected client.
	HTTPClient *http.Client
	// Headers are added to the request in addition to Content-Type.
	Headers map[string]string
	// UserAgent overrides the default User-Agent header when non-empty.
	UserAgent string
}

type OptionFn func(*Options)

func DefaultOptions() Options {
	return Options{
		Endpoint:   DefaultEndpoint,
		HTTPClient: http.DefaultClient,
	}
}

func NewOptions(fns ...OptionFn) Options {
	opts := DefaultOptions()
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		fn(&opts)
	}
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Headers != nil {
		headers := make(map[string]string, len(opts.Headers))
		for key, value := range opts.Headers {
			headers[key] = value
		}
		opts.Headers = headers
	}
	return opts
}

func WithEndpoint(url string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.Endpoint = url
	}
}

func WithHTTPClient(client *http.Client) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.HTTPClient = client
	}
}

func WithHeader(name, value string) OptionFn {
	return func(o *Options) {
		if o == nil || name == "" {
			return
		}
		if o.Headers == nil {
			o.Headers = make(map[string]string)
		}
		o.Headers[name] = value
	}
}

func WithUserAgent(agent string) OptionFn {
	return func(o *Options) {
		if o == nil {
			return
		}
		o.UserAgent = agent
	}
}
