// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package device

import (
	"errors"

	log "github.com/sirupsen/logrus"
)

// Session owns the connection to the driver stack. Physical device handles
// obtained through it must not be used after Close.
type Session struct {
	driver   Driver
	instance Instance
	open     bool
}

// Open validates the application identity and creates an instance with it.
// Every failure is reported as a *ConnectionError.
func Open(driver Driver, info ApplicationInfo) (*Session, error) {
	if driver == nil {
		return nil, &ConnectionError{Err: errors.New("no driver")}
	}
	if info.ApplicationName == "" {
		return nil, &ConnectionError{Err: errors.New("application name is required")}
	}
	if info.APIVersion.Major() == 0 && info.APIVersion.Minor() == 0 {
		return nil, &ConnectionError{Err: errors.New("target API version is required")}
	}

	instance, err := driver.CreateInstance(info)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	log.WithFields(log.Fields{
		"application": info.ApplicationName,
		"api":         info.APIVersion,
	}).Debug("Vulkan instance created")

	return &Session{
		driver:   driver,
		instance: instance,
		open:     true,
	}, nil
}

// Valid reports whether the session still holds an open instance.
func (s *Session) Valid() bool {
	return s != nil && s.open
}

// Close destroys the instance. Closing a nil or closed session does nothing.
func (s *Session) Close() {
	if !s.Valid() {
		return
	}
	s.open = false
	s.driver.DestroyInstance(s.instance)
	s.instance = nil
	log.Debug("Vulkan instance destroyed")
}
