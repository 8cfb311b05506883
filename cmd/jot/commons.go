package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/midbel/jot"
)

func parseDocument(file string) (jot.Value, error) {
	str, err := readDocument(file)
	if err != nil {
		return nil, err
	}
	return jot.Parse(str)
}

func readDocument(file string) (string, error) {
	r, err := openFile(file)
	if err != nil {
		return "", err
	}
	defer r.Close()

	buf, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func openFile(file string) (io.ReadCloser, error) {
	if file == "" || file == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	u, err := url.Parse(file)
	if err != nil {
		return nil, err
	}
	switch u.Scheme {
	case "http", "https":
		req, err := http.NewRequest(http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("accept", "application/json")
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, err
		}
		if res.StatusCode != 200 {
			return nil, fmt.Errorf("fail to retrieve remote file")
		}
		return res.Body, nil
	default:
		return os.Open(file)
	}
}

func writeResult(str, file string) error {
	var w io.Writer = os.Stdout
	if file != "" {
		f, err := os.Create(file)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	_, err := fmt.Fprintln(w, str)
	return err
}
