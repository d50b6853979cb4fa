package handler

import (
	"github.com/gofiber/fiber/v2"

	"lalibela_manager/constants"
	"lalibela_manager/database"
	"lalibela_manager/helper"
	"lalibela_manager/model"
	"lalibela_manager/utils"
)

// GetMarketingPosts serves the promo feed: guests only see live posts, a
// valid admin token sees everything.
func GetMarketingPosts(c *fiber.Ctx) error {
	db := database.DB.Model(&model.MarketingPost{})
	if _, isAdmin := helper.GetAccountFromToken(c); !isAdmin {
		db = db.Where("status = ?", constants.MARKETING_LIVE)
	}

	var posts []model.MarketingPost
	if err := db.Order("created_at DESC").Find(&posts).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, posts)
}

func CreateMarketingPost(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateMarketingPostInput)

	imageUrl, err := helper.UploadImage(c.Context(), input.Image, "lalibela_marketing")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
	}

	status := input.Status
	if status == "" {
		status = constants.MARKETING_DRAFT
	}
	hashtags := input.Hashtags
	if hashtags == "" {
		hashtags = constants.DEFAULT_HASHTAGS
	}

	post := model.MarketingPost{
		Title:     input.Title,
		Caption:   input.Caption,
		Status:    status,
		Image:     imageUrl,
		Hashtags:  hashtags,
		PublishAt: input.PublishAt,
	}

	if err := database.DB.Create(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not create the post", err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, post)
}

func UpdateMarketingPost(c *fiber.Ctx) error {
	postId := c.Locals("postId").(int)
	input := c.Locals("updateInput").(model.UpdateMarketingPostInput)

	var post model.MarketingPost
	if err := database.DB.First(&post, postId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Caption != nil {
		post.Caption = *input.Caption
	}
	if input.Status != nil {
		post.Status = *input.Status
	}
	if input.Image != nil {
		imageUrl, err := helper.UploadImage(c.Context(), *input.Image, "lalibela_marketing")
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Image upload failed", err)
		}
		post.Image = imageUrl
	}
	if input.Hashtags != nil {
		post.Hashtags = *input.Hashtags
	}
	if input.PublishAt != nil {
		post.PublishAt = input.PublishAt
	}

	if err := database.DB.Save(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Could not update the post", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, post)
}

func DeleteMarketingPost(c *fiber.Ctx) error {
	postId := c.Locals("inputId").(int)

	var post model.MarketingPost
	if err := database.DB.First(&post, postId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Post deleted",
	})
}
