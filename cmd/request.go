package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/Mikhail-Beresnev/shared-ng/internal/app"
	"github.com/Mikhail-Beresnev/shared-ng/internal/client/api"
	"github.com/Mikhail-Beresnev/shared-ng/internal/logger"
	"github.com/Mikhail-Beresnev/shared-ng/internal/utils"
)

const (
	paramFlag    = "param"
	dataFlag     = "data"
	jsonFlag     = "json"
	encodingFlag = "encoding"
)

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		rootCmd.AddCommand(newRequestCommand(method, false))
	}

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodPatch} {
		rootCmd.AddCommand(newRequestCommand(method, true))
	}
}

func newRequestCommand(method string, withBody bool) *cobra.Command {
	name := strings.ToLower(method)

	command := &cobra.Command{
		Use:   name + " [flags] {uri}",
		Short: fmt.Sprintf("Send a %s request and print the response.", method),
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			request, err := parseRequest(cmd.Flags(), method, args[0])
			if err != nil {
				logger.Fatalf(cmd.Context(), "Failed to parse flags: %v", err)
			}

			app.ExecuteRequestCommand(cmd.Context(), appConfig, request)
		},
	}

	flags := command.Flags()

	flags.StringArrayP(
		paramFlag,
		"p",
		nil,
		"query parameter as key=value, may be repeated.")

	if !withBody {
		return command
	}

	flags.StringArrayP(
		dataFlag,
		"d",
		nil,
		"body field as key=value, may be repeated; applied on top of --json.")

	flags.String(
		jsonFlag,
		"",
		"body as a JSON object, for example '{\"name\":\"value\"}'.")

	flags.StringP(
		encodingFlag,
		"e",
		api.EncodingJSON.String(),
		"body encoding: json or urlencoded.")

	return command
}

func parseRequest(flags *pflag.FlagSet, method, uri string) (*app.Request, error) {
	request := &app.Request{
		Method: method,
		URI:    uri,
		Params: url.Values{},
	}

	params, _ := flags.GetStringArray(paramFlag)
	for _, pair := range params {
		key, value, err := utils.ParseKeyValue(pair)
		if err != nil {
			return nil, err
		}

		request.Params.Add(key, value)
	}

	if flags.Lookup(encodingFlag) == nil {
		return request, nil
	}

	encodingName, _ := flags.GetString(encodingFlag)

	encoding, err := api.ParseEncoding(encodingName)
	if err != nil {
		return nil, err
	}

	request.Encoding = encoding

	data, err := parseData(flags)
	if err != nil {
		return nil, err
	}

	request.Data = data

	return request, nil
}

func parseData(flags *pflag.FlagSet) (api.Payload, error) {
	var data api.Payload

	if raw, _ := flags.GetString(jsonFlag); strings.TrimSpace(raw) != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			return nil, fmt.Errorf("invalid --json value: %w", err)
		}
	}

	pairs, _ := flags.GetStringArray(dataFlag)
	if len(pairs) > 0 && data == nil {
		data = make(api.Payload, len(pairs))
	}

	for _, pair := range pairs {
		key, value, err := utils.ParseKeyValue(pair)
		if err != nil {
			return nil, err
		}

		data[key] = value
	}

	return data, nil
}
