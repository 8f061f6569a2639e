// Package environment names the deployment environments an application runs
// in and normalises configured values onto them.
//
//	switch environment.Parse(os.Getenv("APP_ENV")) {
//	case environment.Production:
//		// ...
//	}
package environment
