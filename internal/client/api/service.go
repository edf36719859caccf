package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/Mikhail-Beresnev/shared-ng/internal/config"
	http_transport "github.com/Mikhail-Beresnev/shared-ng/internal/transport/http"
	"github.com/Mikhail-Beresnev/shared-ng/internal/utils"
	"github.com/Mikhail-Beresnev/shared-ng/internal/version"
)

// Service defines the interface for talking to the backend API.
type Service interface {
	// Get issues a GET request.
	Get(ctx context.Context, uri string, params url.Values) *Call
	// Delete issues a DELETE request.
	Delete(ctx context.Context, uri string, params url.Values) *Call
	// Post issues a POST request with an encoded body.
	Post(ctx context.Context, uri string, data Payload, params url.Values, encoding Encoding) *Call
	// Put issues a PUT request with an encoded body.
	Put(ctx context.Context, uri string, data Payload, params url.Values, encoding Encoding) *Call
	// Patch issues a PATCH request with an encoded body.
	Patch(ctx context.Context, uri string, data Payload, params url.Values, encoding Encoding) *Call
	// Verify re-checks the session and returns the logged in user or nil.
	Verify(ctx context.Context, callback VerifyCallback) *User
	// IsLoggedOn reports whether a user is logged in.
	IsLoggedOn() bool
	// AuthUser returns the logged in user or nil.
	AuthUser() *User
	// Session returns the current session state.
	Session() SessionState
	// UploadImage uploads an image as a multipart form.
	UploadImage(ctx context.Context, file *UploadFile, onSuccess UploadSuccessCallback, onError UploadErrorCallback)
	// GetBaseURL returns the server URL relative URIs are resolved against.
	GetBaseURL() string
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// raw issues requests without session checks.
	raw *rawRequester
	// cookies exposes the cookie store used for session detection.
	cookies CookieSource
	// sessionCookieName is the cookie whose presence triggers verification.
	sessionCookieName string
	// verifyURI is the session verification endpoint.
	verifyURI string
	// uploadImageURI is the image upload endpoint.
	uploadImageURI string
	// maxUploadSize caps uploads; zero disables the check.
	maxUploadSize int64

	mu      sync.RWMutex
	session SessionState
}

// Option customizes NewService.
type Option func(*serviceOptions)

type serviceOptions struct {
	httpClient        *http.Client
	cookieSource      CookieSource
	registerer        prometheus.Registerer
	userAgentProvider utils.UserAgentProvider
}

// WithHTTPClient replaces the HTTP client built from the configuration.
// A client without a cookie jar gets the service jar.
func WithHTTPClient(client *http.Client) Option {
	return func(o *serviceOptions) {
		o.httpClient = client
	}
}

// WithCookieSource replaces the cookie jar as the source of session detection.
func WithCookieSource(source CookieSource) Option {
	return func(o *serviceOptions) {
		o.cookieSource = source
	}
}

// WithRegisterer registers request metrics with registerer.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(o *serviceOptions) {
		o.registerer = registerer
	}
}

// WithUserAgentProvider replaces the User-Agent derived from the configuration.
func WithUserAgentProvider(provider utils.UserAgentProvider) Option {
	return func(o *serviceOptions) {
		o.userAgentProvider = provider
	}
}

// NewService creates a ServiceImpl for cfg and verifies the session once.
func NewService(ctx context.Context, cfg *config.Config, opts ...Option) (*ServiceImpl, error) {
	var options serviceOptions
	for _, opt := range opts {
		opt(&options)
	}

	baseURL, err := url.Parse(strings.TrimSpace(cfg.ServerURL))
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}

	// Default jar for the session cookie and whatever the server sets later.
	cookies, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	httpClient, err := newHTTPClient(cfg, cookies, &options)
	if err != nil {
		return nil, err
	}

	sessionCookieName := valueOrDefault(cfg.SessionCookieName, config.DefaultSessionCookieName)

	// Seed the jar the client actually sends cookies from, which may be a caller's jar.
	if cfg.SessionToken != "" && httpClient.Jar != nil {
		cookie := &http.Cookie{
			Name:  sessionCookieName,
			Value: cfg.SessionToken,
			Path:  "/",
		}
		httpClient.Jar.SetCookies(baseURL, []*http.Cookie{cookie})
	}

	cookieSource := options.cookieSource
	if cookieSource == nil {
		cookieSource = NewJarCookieSource(httpClient.Jar, baseURL)
	}

	service := &ServiceImpl{
		cfg: cfg,
		raw: &rawRequester{
			httpClient: httpClient,
			baseURL:    baseURL.String(),
		},
		cookies:           cookieSource,
		sessionCookieName: sessionCookieName,
		verifyURI:         valueOrDefault(cfg.VerifyURI, config.DefaultVerifyURI),
		uploadImageURI:    valueOrDefault(cfg.UploadImageURI, config.DefaultUploadImageURI),
		maxUploadSize:     cfg.ParsedMaxUploadSize,
		session:           LoggedOut{},
	}

	service.Verify(ctx, nil)

	return service, nil
}

// Get issues a GET request. No body is sent.
func (s *ServiceImpl) Get(ctx context.Context, uri string, params url.Values) *Call {
	return s.dispatch(ctx, verbGet, uri, nil, params, EncodingJSON)
}

// Delete issues a DELETE request. No body is sent.
func (s *ServiceImpl) Delete(ctx context.Context, uri string, params url.Values) *Call {
	return s.dispatch(ctx, verbDelete, uri, nil, params, EncodingJSON)
}

// Post issues a POST request with data encoded according to encoding.
func (s *ServiceImpl) Post(
	ctx context.Context,
	uri string,
	data Payload,
	params url.Values,
	encoding Encoding,
) *Call {
	return s.dispatch(ctx, verbPost, uri, data, params, encoding)
}

// Put issues a PUT request with data encoded according to encoding.
func (s *ServiceImpl) Put(
	ctx context.Context,
	uri string,
	data Payload,
	params url.Values,
	encoding Encoding,
) *Call {
	return s.dispatch(ctx, verbPut, uri, data, params, encoding)
}

// Patch issues a PATCH request with data encoded according to encoding.
func (s *ServiceImpl) Patch(
	ctx context.Context,
	uri string,
	data Payload,
	params url.Values,
	encoding Encoding,
) *Call {
	return s.dispatch(ctx, verbPatch, uri, data, params, encoding)
}

// GetBaseURL returns the server URL relative URIs are resolved against.
func (s *ServiceImpl) GetBaseURL() string {
	return s.raw.baseURL
}

func (s *ServiceImpl) dispatch(
	ctx context.Context,
	v verb,
	uri string,
	data Payload,
	params url.Values,
	encoding Encoding,
) *Call {
	options := CreateOptions(params, encoding)

	var body io.Reader = http.NoBody

	if v.withBody {
		encoded, err := EncodeBody(data, encoding)
		if err != nil {
			return failedCall(v.String(), CreateURI(s.raw.baseURL, uri), err)
		}

		body = strings.NewReader(encoded)
	}

	return s.raw.start(ctx, v.String(), uri, options, body)
}

// newHTTPClient assembles the client: User-Agent, logging and metrics around the default transport.
func newHTTPClient(cfg *config.Config, jar http.CookieJar, options *serviceOptions) (*http.Client, error) {
	if options.httpClient != nil {
		client := *options.httpClient
		if client.Jar == nil {
			client.Jar = jar
		}

		return &client, nil
	}

	metrics, err := http_transport.NewClientMetrics(options.registerer)
	if err != nil {
		return nil, err
	}

	userAgentProvider := options.userAgentProvider
	if userAgentProvider == nil {
		userAgentProvider = defaultUserAgentProvider(cfg)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	return &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(
				http_transport.NewMetricsTransport(http.DefaultTransport, metrics),
				cfg.ParsedMaxLogLength),
			userAgentProvider),
		Jar:     jar,
		Timeout: timeout,
	}, nil
}

func defaultUserAgentProvider(cfg *config.Config) utils.UserAgentProvider {
	if userAgent := strings.TrimSpace(cfg.UserAgent); userAgent != "" {
		return utils.NewSimpleUserAgentProvider(userAgent)
	}

	return utils.NewProductUserAgentProvider(http_transport.DefaultProduct, version.Short(), "")
}

func valueOrDefault(value, fallback string) string {
	if value = strings.TrimSpace(value); value != "" {
		return value
	}

	return fallback
}
