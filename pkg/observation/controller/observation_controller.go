package controller

import "github.com/labstack/echo/v4"

type ObservationController interface {
	Upsert(c echo.Context) error
	List(c echo.Context) error
}
