// Package usecasetest in-memory fakes shared by use case and service tests
package usecasetest
