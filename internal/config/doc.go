// Package config loads ftd project configuration.
//
// The configuration lives in ftd.json (or ftd.yaml) at the project root:
//
//	{
//	  "name": "docs",
//	  "pages": "pages",
//	  "output": "dist",
//	  "dev": {
//	    "host": "localhost",
//	    "port": 8000,
//	    "watch": true,
//	    "debounce": "200ms"
//	  },
//	  "render": {"dark": false, "mobile": false},
//	  "publish": {
//	    "bucket": "docs-site",
//	    "prefix": "v1",
//	    "region": "us-east-1"
//	  },
//	  "metrics": {"enabled": true, "namespace": "ftd"}
//	}
//
// # Usage
//
//	cfg, err := config.LoadFromWorkingDir()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Pages:", cfg.PagesPath())
package config
