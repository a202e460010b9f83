package api

import (
	"net/http"

	"fourtyfit/workout-app/internal/service"
	"fourtyfit/workout-app/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes wires all handlers onto the router.
//
// Mutating operations keep the original function front-door shape: one POST
// route per operation, JSON body, `{success:true,...}` / `{error:...}`
// payloads. Read operations are plain GETs.
func SetupRoutes(
	router *gin.Engine,
	equipmentService service.EquipmentService,
	exerciseService service.ExerciseService,
	muscleGroupService service.MuscleGroupService,
	workoutService service.WorkoutService,
	fileStorage storage.FileStorage,
) {
	equipmentHandler := NewEquipmentHandler(equipmentService)
	exerciseHandler := NewExerciseHandler(exerciseService)
	muscleGroupHandler := NewMuscleGroupHandler(muscleGroupService)
	workoutHandler := NewWorkoutHandler(workoutService)
	uploadHandler := NewUploadHandler(fileStorage)

	// Every endpoint is CORS-open; the form front end runs on another origin.
	router.Use(cors.Default())

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// --- Function front-door: one POST per mutating operation ---
	router.POST("/addEquipment", equipmentHandler.AddEquipment)
	router.POST("/updateEquipment", equipmentHandler.UpdateEquipment)
	router.POST("/removeEquipment", equipmentHandler.RemoveEquipment)

	router.POST("/addExercise", exerciseHandler.AddExercise)
	router.POST("/updateExercise", exerciseHandler.UpdateExercise)
	router.POST("/removeExercise", exerciseHandler.RemoveExercise)

	router.POST("/addMuscleGroup", muscleGroupHandler.AddMuscleGroup)
	router.POST("/updateMuscleGroup", muscleGroupHandler.UpdateMuscleGroup)
	router.POST("/removeMuscleGroup", muscleGroupHandler.RemoveMuscleGroup)
	router.POST("/resetMuscleGroups", muscleGroupHandler.ResetMuscleGroups)
	router.POST("/uploadMuscleGroups", muscleGroupHandler.UploadMuscleGroups)

	router.POST("/addWorkout", workoutHandler.AddWorkout)
	router.POST("/updateWorkout", workoutHandler.UpdateWorkout)
	router.POST("/removeWorkout", workoutHandler.RemoveWorkout)

	router.POST("/uploadImage", uploadHandler.UploadImage)

	// --- Read endpoints ---
	equipmentGroup := router.Group("/equipment")
	{
		equipmentGroup.GET("", equipmentHandler.ListEquipment)
		equipmentGroup.GET("/exists", equipmentHandler.EquipmentExists)
		equipmentGroup.GET("/:id", equipmentHandler.GetEquipment)
	}

	exerciseGroup := router.Group("/exercises")
	{
		exerciseGroup.GET("", exerciseHandler.ListExercises)
		exerciseGroup.GET("/exists", exerciseHandler.ExerciseExists)
		exerciseGroup.GET("/:id", exerciseHandler.GetExercise)
	}

	muscleGroupGroup := router.Group("/muscleGroups")
	{
		muscleGroupGroup.GET("", muscleGroupHandler.ListMuscleGroups)
		muscleGroupGroup.GET("/exists", muscleGroupHandler.MuscleGroupExists)
		muscleGroupGroup.GET("/:id", muscleGroupHandler.GetMuscleGroup)
	}

	workoutGroup := router.Group("/workouts")
	{
		workoutGroup.GET("", workoutHandler.ListWorkouts)
		workoutGroup.GET("/exists", workoutHandler.WorkoutExists)
		workoutGroup.GET("/:id", workoutHandler.GetWorkout)
	}
}
