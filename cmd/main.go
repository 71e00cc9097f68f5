package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"coffeehouse/internal/handlers"
	"coffeehouse/internal/repositories"
	"coffeehouse/internal/services"
	"coffeehouse/pkg/database"
	"coffeehouse/pkg/logger"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.Bootstrap(context.Background(), pool); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Repositories
	customersRepo := repositories.NewCustomersRepo(pool)
	drinksRepo := repositories.NewDrinksRepo(pool)
	employeesRepo := repositories.NewEmployeesRepo(pool)
	extrasRepo := repositories.NewExtrasRepo(pool)
	ordersRepo := repositories.NewOrdersRepo(pool)
	orderItemsRepo := repositories.NewOrderItemsRepo(pool)

	// Services
	customerService := services.NewCustomerService(customersRepo)
	drinkService := services.NewDrinkService(drinksRepo)
	employeeService := services.NewEmployeeService(employeesRepo)
	extraService := services.NewExtraService(extrasRepo)
	orderService := services.NewOrderService(ordersRepo, orderItemsRepo)

	// Handlers
	customerHandlers := handlers.NewCustomerHandlers(customerService)
	drinkHandlers := handlers.NewDrinkHandlers(drinkService)
	employeeHandlers := handlers.NewEmployeeHandlers(employeeService)
	extraHandlers := handlers.NewExtraHandlers(extraService)
	orderHandlers := handlers.NewOrderHandlers(orderService)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Coffee Shop API is running!")
	})

	api := e.Group("/api")

	api.GET("/customers", customerHandlers.ListCustomers)
	api.GET("/customers/:id", customerHandlers.GetCustomer)
	api.POST("/customers", customerHandlers.CreateCustomer)
	api.PUT("/customers/:id", customerHandlers.UpdateCustomer)
	api.DELETE("/customers/:id", customerHandlers.DeleteCustomer)

	api.GET("/drinks", drinkHandlers.ListDrinks)
	api.GET("/drinks/:id", drinkHandlers.GetDrink)
	api.POST("/drinks", drinkHandlers.CreateDrink)
	api.PUT("/drinks/:id", drinkHandlers.UpdateDrink)
	api.DELETE("/drinks/:id", drinkHandlers.DeleteDrink)

	api.GET("/employees", employeeHandlers.ListEmployees)
	api.GET("/employees/:id", employeeHandlers.GetEmployee)
	api.POST("/employees", employeeHandlers.CreateEmployee)
	api.PUT("/employees/:id", employeeHandlers.UpdateEmployee)
	api.DELETE("/employees/:id", employeeHandlers.DeleteEmployee)

	api.GET("/extras", extraHandlers.ListExtras)
	api.GET("/extras/:id", extraHandlers.GetExtra)
	api.POST("/extras", extraHandlers.CreateExtra)
	api.PUT("/extras/:id", extraHandlers.UpdateExtra)

	api.GET("/orders", orderHandlers.ListOrders)
	api.GET("/orders/:id", orderHandlers.GetOrder)
	api.POST("/orders", orderHandlers.CreateOrder)
	api.GET("/orders/:id/items", orderHandlers.ListOrderItems)

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	logger.Info.Infof("Coffeehouse server v%s starting on port %d", version, port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
