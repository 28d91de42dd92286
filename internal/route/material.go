package route

import (
	"github.com/gin-gonic/gin"
	"github.com/ujenziiq/ujenziiq-go/internal/controller"
	"github.com/ujenziiq/ujenziiq-go/internal/middleware"
)

func Materials(r *gin.RouterGroup, mc *controller.MaterialController, middleware *middleware.Middleware) {
	materials := r.Group("/materials")
	materials.Use(middleware.AuthMiddleware)
	{
		materials.POST("", mc.CreateMaterial)
		materials.GET("", mc.GetMaterialList)
		materials.GET("/:materialId", mc.GetMaterialById)
		materials.PATCH("/:materialId", mc.UpdateMaterial)
		materials.DELETE("/:materialId", mc.DeleteMaterial)
	}
}

func ResourceAllocations(r *gin.RouterGroup, rc *controller.ResourceAllocationController, middleware *middleware.Middleware) {
	allocations := r.Group("/resource-allocations")
	allocations.Use(middleware.AuthMiddleware)
	{
		allocations.POST("", rc.CreateAllocation)
		allocations.GET("", rc.GetAllocationList)
		allocations.GET("/:allocationId", rc.GetAllocationById)
		allocations.PATCH("/:allocationId", rc.UpdateAllocation)
		allocations.DELETE("/:allocationId", rc.DeleteAllocation)
	}
}
