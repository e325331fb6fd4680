package repository

import (
	"fitflow/fitness-app/internal/domain"
)

func intPtr(v int) *int { return &v }

// WorkoutCatalog returns the fixed workout catalog every store seeds at
// startup: six workouts, two per category. IDs and timestamps are assigned by
// the seeding store.
func WorkoutCatalog() []domain.Workout {
	return []domain.Workout{
		{
			Name:           "Full Body Cardio Blast",
			Description:    "Get your heart pumping with this energizing cardio session",
			Category:       domain.CategoryBeginner,
			Type:           "cardio",
			Duration:       20,
			CaloriesBurned: 250,
			VideoURL:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ImageURL:       "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?auto=format&fit=crop&w=400&h=250",
			Exercises: []domain.Exercise{
				{Name: "Jumping Jacks", Duration: intPtr(60)},
				{Name: "High Knees", Duration: intPtr(45)},
				{Name: "Burpees", Duration: intPtr(30), Reps: intPtr(10)},
				{Name: "Mountain Climbers", Duration: intPtr(45)},
			},
		},
		{
			Name:           "Upper Body Strength",
			Description:    "Build lean muscle with targeted resistance exercises",
			Category:       domain.CategoryIntermediate,
			Type:           "strength",
			Duration:       35,
			CaloriesBurned: 180,
			VideoURL:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ImageURL:       "https://images.unsplash.com/photo-1581009146145-b5ef050c2e1e?auto=format&fit=crop&w=400&h=250",
			Exercises: []domain.Exercise{
				{Name: "Push-ups", Reps: intPtr(15)},
				{Name: "Dumbbell Rows", Reps: intPtr(12)},
				{Name: "Shoulder Press", Reps: intPtr(10)},
				{Name: "Tricep Dips", Reps: intPtr(12)},
			},
		},
		{
			Name:           "Extreme HIIT Challenge",
			Description:    "Push your limits with high-intensity intervals",
			Category:       domain.CategoryAdvanced,
			Type:           "hiit",
			Duration:       45,
			CaloriesBurned: 400,
			VideoURL:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ImageURL:       "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?auto=format&fit=crop&w=400&h=250",
			Exercises: []domain.Exercise{
				{Name: "Sprint Intervals", Duration: intPtr(30)},
				{Name: "Burpee Box Jumps", Duration: intPtr(45)},
				{Name: "Battle Ropes", Duration: intPtr(60)},
				{Name: "Kettlebell Swings", Duration: intPtr(40)},
			},
		},
		{
			Name:           "Yoga & Flexibility",
			Description:    "Improve flexibility and find inner peace",
			Category:       domain.CategoryBeginner,
			Type:           "yoga",
			Duration:       25,
			CaloriesBurned: 120,
			VideoURL:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ImageURL:       "https://images.unsplash.com/photo-1544367567-0f2fcb009e0b?auto=format&fit=crop&w=400&h=250",
			Exercises: []domain.Exercise{
				{Name: "Sun Salutation", Duration: intPtr(300)},
				{Name: "Warrior Poses", Duration: intPtr(180)},
				{Name: "Tree Pose", Duration: intPtr(60)},
				{Name: "Savasana", Duration: intPtr(240)},
			},
		},
		{
			Name:           "Core Destroyer",
			Description:    "Strengthen your core with targeted exercises",
			Category:       domain.CategoryIntermediate,
			Type:           "strength",
			Duration:       30,
			CaloriesBurned: 200,
			VideoURL:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ImageURL:       "https://images.unsplash.com/photo-1571019614242-c5c5dee9f50b?auto=format&fit=crop&w=400&h=250",
			Exercises: []domain.Exercise{
				{Name: "Plank", Duration: intPtr(60)},
				{Name: "Russian Twists", Reps: intPtr(20)},
				{Name: "Dead Bug", Reps: intPtr(15)},
				{Name: "Bicycle Crunches", Reps: intPtr(25)},
			},
		},
		{
			Name:           "CrossFit Mayhem",
			Description:    "Ultimate functional fitness challenge",
			Category:       domain.CategoryAdvanced,
			Type:           "crossfit",
			Duration:       50,
			CaloriesBurned: 450,
			VideoURL:       "https://www.youtube.com/embed/dQw4w9WgXcQ",
			ImageURL:       "https://images.unsplash.com/photo-1534438327276-14e5300c3a48?auto=format&fit=crop&w=400&h=250",
			Exercises: []domain.Exercise{
				{Name: "Thrusters", Reps: intPtr(21)},
				{Name: "Pull-ups", Reps: intPtr(15)},
				{Name: "Box Jumps", Reps: intPtr(9)},
				{Name: "Deadlifts", Reps: intPtr(12)},
			},
		},
	}
}
